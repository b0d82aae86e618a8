package api

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// AnalyticsSummary is the headline metrics block of the admin dashboard.
type AnalyticsSummary struct {
	TotalUsers       int     `json:"total_users"`
	ActiveUsers      int     `json:"active_users"`
	TotalGenerations int     `json:"total_generations"`
	GenerationsToday int     `json:"generations_today"`
	Revenue          float64 `json:"revenue"`
	Currency         string  `json:"currency"`
}

// UsagePoint is one day of platform usage.
type UsagePoint struct {
	Date        string `json:"date"`
	Generations int    `json:"generations"`
	NewUsers    int    `json:"new_users"`
}

// GetAnalyticsSummary fetches aggregate platform metrics.
func (c *Client) GetAnalyticsSummary(ctx context.Context) (AnalyticsSummary, error) {
	var summary AnalyticsSummary
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("analytics/summary", url.Values{}), nil), &summary)
	return summary, err
}

// GetUsageSeries fetches per-day usage between from and to, inclusive.
func (c *Client) GetUsageSeries(ctx context.Context, from, to time.Time) ([]UsagePoint, error) {
	q := url.Values{}
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))

	var points []UsagePoint
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("analytics/usage", q), nil), &points)
	return points, err
}
