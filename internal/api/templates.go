package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PromptTemplate is a reusable content-generation prompt with named
// variables substituted at generation time.
type PromptTemplate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PromptTemplateCreate struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Content   string   `json:"content"`
	Variables []string `json:"variables,omitempty"`
}

type PromptTemplateUpdate struct {
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Content   *string  `json:"content,omitempty"`
	Variables []string `json:"variables,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

type PromptTemplateList struct {
	Items []PromptTemplate `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Pages int              `json:"pages"`
}

func (c *Client) ListPromptTemplates(ctx context.Context, opts ListOptions) (PromptTemplateList, error) {
	var list PromptTemplateList
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("prompt-templates", opts.values()), nil), &list)
	return list, err
}

func (c *Client) GetPromptTemplate(ctx context.Context, id int64) (PromptTemplate, error) {
	var tpl PromptTemplate
	err := decode(c.Do(ctx, http.MethodGet, resourcePath(fmt.Sprintf("prompt-templates/%d", id), url.Values{}), nil), &tpl)
	return tpl, err
}

func (c *Client) CreatePromptTemplate(ctx context.Context, req PromptTemplateCreate) (PromptTemplate, error) {
	var tpl PromptTemplate
	err := decode(c.Do(ctx, http.MethodPost, resourcePath("prompt-templates", url.Values{}), req), &tpl)
	return tpl, err
}

func (c *Client) UpdatePromptTemplate(ctx context.Context, id int64, req PromptTemplateUpdate) (PromptTemplate, error) {
	var tpl PromptTemplate
	err := decode(c.Do(ctx, http.MethodPut, resourcePath(fmt.Sprintf("prompt-templates/%d", id), url.Values{}), req), &tpl)
	return tpl, err
}

func (c *Client) DeletePromptTemplate(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, resourcePath(fmt.Sprintf("prompt-templates/%d", id), url.Values{}), nil).Err()
}
