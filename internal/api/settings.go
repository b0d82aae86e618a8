package api

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Setting is a single platform configuration entry.
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SettingUpdate struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ListSettings returns all platform settings.
func (c *Client) ListSettings(ctx context.Context) ([]Setting, error) {
	var settings []Setting
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("settings", url.Values{}), nil), &settings)
	return settings, err
}

// UpdateSetting sets the value of a single setting key.
func (c *Client) UpdateSetting(ctx context.Context, key, value string) (Setting, error) {
	var setting Setting
	err := decode(c.Do(ctx, http.MethodPut, resourcePath("settings", url.Values{}), SettingUpdate{Key: key, Value: value}), &setting)
	return setting, err
}
