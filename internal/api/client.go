package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/revcopy/adminctl/internal/auth"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second

	loginPath   = "/api/v1/admin/auth/login"
	refreshPath = "/api/v1/auth/refresh"
	logoutPath  = "/api/v1/auth/logout"
	mePath      = "/api/v1/admin/auth/me"

	adminBase = "/api/v1/admin"
)

type ClientOpts struct {
	BaseURL string
	Timeout time.Duration

	// Store holds the session credentials. Required.
	Store *auth.Store

	// OnAuthFailure is invoked when the session cannot be recovered (no
	// refresh token, or the refresh call failed) and the store has been
	// cleared. Optional.
	OnAuthFailure func()
}

// Client performs authenticated calls against the admin API. Every call goes
// through Do, which returns an Envelope instead of raising: transport
// errors, timeouts and HTTP failures all collapse into Success=false.
type Client struct {
	httpClient    *resty.Client
	baseURL       string
	store         *auth.Store
	onAuthFailure func()
	refreshGroup  singleflight.Group
}

func NewClient(opts ClientOpts) *Client {
	c := Client{
		baseURL:       DefaultBaseURL,
		store:         opts.Store,
		onAuthFailure: opts.OnAuthFailure,
	}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	timeout := DefaultTimeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(c.baseURL).
		SetTimeout(timeout).
		SetHeaders(
			map[string]string{
				"Accept":     "application/json",
				"User-Agent": "adminctl/1.0",
			},
		)

	return &c
}

// Store returns the client's token store.
func (c *Client) Store() *auth.Store {
	return c.store
}

// Do performs one logical API call and always returns an Envelope; it never
// panics or returns an error. A 401 triggers a single refresh attempt and
// the call fails with "Authentication required" regardless of the refresh
// outcome; the caller must re-issue the call after a successful refresh.
func (c *Client) Do(ctx context.Context, method, path string, body any) Envelope {
	req := c.httpClient.NewRequest().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", uuid.NewString())

	if c.store.IsAuthenticated() {
		if token, ok := c.store.AccessToken(); ok {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).
			Msg("request transport failure")
		return failure(err.Error())
	}

	if res.StatusCode() == http.StatusUnauthorized {
		if err := c.refreshSession(ctx); err != nil {
			log.Debug().Err(err).Msg("session refresh failed")
		}
		return failure("Authentication required")
	}

	if res.IsError() {
		return failure(serverMessage(res.StatusCode(), res.Body()))
	}

	raw := res.Body()
	if len(raw) > 0 && !json.Valid(raw) {
		return failure(fmt.Sprintf("invalid JSON response from %s", path))
	}

	return Envelope{Success: true, Data: json.RawMessage(raw)}
}

// refreshSession runs the one-shot refresh protocol: exchange the refresh
// token for a new pair, or tear the session down. Concurrent callers share a
// single in-flight attempt. There is no retry and no backoff.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refreshToken, ok := c.store.RefreshToken()
		if !ok {
			c.teardownSession()
			return nil, fmt.Errorf("no refresh token available")
		}

		res, err := c.httpClient.NewRequest().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{"refresh_token": refreshToken}).
			Post(refreshPath)
		if err != nil {
			c.teardownSession()
			return nil, fmt.Errorf("refresh request failed: %w", err)
		}
		if res.IsError() {
			c.teardownSession()
			return nil, fmt.Errorf("refresh rejected: %s", serverMessage(res.StatusCode(), res.Body()))
		}

		var grant auth.Grant
		if err := json.Unmarshal(res.Body(), &grant); err != nil {
			c.teardownSession()
			return nil, fmt.Errorf("failed to parse refresh response: %w", err)
		}

		c.store.SetTokens(auth.PairFromGrant(grant, time.Now()))
		log.Info().Msg("session tokens refreshed")
		return nil, nil
	})
	return err
}

// RefreshSession exchanges the stored refresh token for a new pair. Exposed
// for proactive refresh ahead of expiry; a failure means the session has
// been torn down.
func (c *Client) RefreshSession(ctx context.Context) error {
	return c.refreshSession(ctx)
}

func (c *Client) teardownSession() {
	c.store.Clear()
	log.Info().Msg("session cleared, login required")
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
}

// ListOptions are the common query parameters accepted by list endpoints.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", fmt.Sprint(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", fmt.Sprint(o.Limit))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

// resourcePath builds an admin resource path with optional query parameters.
func resourcePath(resource string, q url.Values) string {
	path := adminBase + "/" + resource
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	return path
}
