package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPromptTemplates(t *testing.T) {
	var captured *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": 1, "name": "Product description", "category": "ecommerce", "content": "Write a description for {product}", "variables": ["product"], "is_active": true},
				{"id": 2, "name": "Ad copy", "category": "ads", "content": "Sell {product} to {audience}", "variables": ["product", "audience"], "is_active": false}
			],
			"total": 2, "page": 1, "pages": 1
		}`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	list, err := client.ListPromptTemplates(context.Background(), ListOptions{Page: 1, Limit: 20, Search: "product"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/admin/prompt-templates", captured.URL.Path)
	assert.Equal(t, "1", captured.URL.Query().Get("page"))
	assert.Equal(t, "20", captured.URL.Query().Get("limit"))
	assert.Equal(t, "product", captured.URL.Query().Get("search"))

	require.Len(t, list.Items, 2)
	assert.Equal(t, int64(1), list.Items[0].ID)
	assert.Equal(t, []string{"product"}, list.Items[0].Variables)
	assert.False(t, list.Items[1].IsActive)
	assert.Equal(t, 2, list.Total)
}

func TestCreatePromptTemplate(t *testing.T) {
	var body PromptTemplateCreate
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/admin/prompt-templates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7, "name": "New template", "category": "email", "content": "...", "is_active": true}`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	tpl, err := client.CreatePromptTemplate(context.Background(), PromptTemplateCreate{
		Name:     "New template",
		Category: "email",
		Content:  "...",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), tpl.ID)
	assert.Equal(t, "New template", body.Name)
	assert.Equal(t, "email", body.Category)
}

func TestDeletePromptTemplate(t *testing.T) {
	var captured *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	err := client.DeletePromptTemplate(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "/api/v1/admin/prompt-templates/42", captured.URL.Path)
}

func TestGetUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/admin/users/9", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 9, "email": "user@example.com", "full_name": "Test User", "plan": "pro", "is_active": true, "created_at": "2026-01-15T12:00:00Z"}`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	user, err := client.GetUser(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "pro", user.Plan)
	assert.Equal(t, 2026, user.CreatedAt.Year())
}

func TestUpdateUserSendsOnlyChangedFields(t *testing.T) {
	var raw map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 9, "email": "user@example.com", "full_name": "Test User", "plan": "pro", "is_active": false}`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	inactive := false
	_, err := client.UpdateUser(context.Background(), 9, UserUpdate{IsActive: &inactive})
	require.NoError(t, err)

	assert.Contains(t, raw, "is_active")
	assert.NotContains(t, raw, "full_name")
	assert.NotContains(t, raw, "plan")
}

func TestMe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, mePath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1, "email": "root@example.com", "full_name": "Root Admin", "role": "superadmin", "is_active": true}`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	profile, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "superadmin", profile.Role)
}

func TestTriggerCrawler(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/admin/crawlers/3/run", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"id": 100, "crawler_id": 3, "status": "running", "started_at": "2026-08-29T10:00:00Z"}`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	run, err := client.TriggerCrawler(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(100), run.ID)
	assert.Equal(t, "running", run.Status)
}

func TestListSettings(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"key": "max_generations_per_day", "value": "100", "description": "Daily cap"}]`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	settings, err := client.ListSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "max_generations_per_day", settings[0].Key)
}

func TestGetAnalyticsSummary(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/admin/analytics/summary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_users": 1200, "active_users": 340, "total_generations": 56000, "generations_today": 410, "revenue": 12999.50, "currency": "USD"}`))
	}))
	defer ts.Close()

	client, _ := newTestClient(ts.URL, validTestPair("tok"), nil)

	summary, err := client.GetAnalyticsSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1200, summary.TotalUsers)
	assert.Equal(t, 12999.50, summary.Revenue)
}
