package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Payment is a customer payment record.
type Payment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentList struct {
	Items []Payment `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// AmazonAccount is a crawl account used to fetch product reviews.
type AmazonAccount struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	Country    string     `json:"country"`
	Status     string     `json:"status"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

type AmazonAccountCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
}

type AmazonAccountList struct {
	Items []AmazonAccount `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Pages int             `json:"pages"`
}

// ProxyServer is an outbound proxy used by the crawlers.
type ProxyServer struct {
	ID            int64      `json:"id"`
	Host          string     `json:"host"`
	Port          int        `json:"port"`
	Protocol      string     `json:"protocol"`
	Username      string     `json:"username,omitempty"`
	IsActive      bool       `json:"is_active"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
}

type ProxyServerCreate struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type ProxyServerList struct {
	Items []ProxyServer `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// Crawler is a platform-specific review crawler.
type Crawler struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Platform  string     `json:"platform"`
	Status    string     `json:"status"`
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
}

type CrawlerList struct {
	Items []Crawler `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// CrawlerRun is a single crawl execution.
type CrawlerRun struct {
	ID        int64     `json:"id"`
	CrawlerID int64     `json:"crawler_id"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
}

func (c *Client) ListPayments(ctx context.Context, opts ListOptions) (PaymentList, error) {
	var list PaymentList
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("payments", opts.values()), nil), &list)
	return list, err
}

func (c *Client) GetPayment(ctx context.Context, id int64) (Payment, error) {
	var payment Payment
	err := decode(c.Do(ctx, http.MethodGet, resourcePath(fmt.Sprintf("payments/%d", id), url.Values{}), nil), &payment)
	return payment, err
}

func (c *Client) ListAmazonAccounts(ctx context.Context, opts ListOptions) (AmazonAccountList, error) {
	var list AmazonAccountList
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("amazon-accounts", opts.values()), nil), &list)
	return list, err
}

func (c *Client) CreateAmazonAccount(ctx context.Context, req AmazonAccountCreate) (AmazonAccount, error) {
	var account AmazonAccount
	err := decode(c.Do(ctx, http.MethodPost, resourcePath("amazon-accounts", url.Values{}), req), &account)
	return account, err
}

func (c *Client) DeleteAmazonAccount(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, resourcePath(fmt.Sprintf("amazon-accounts/%d", id), url.Values{}), nil).Err()
}

func (c *Client) ListProxyServers(ctx context.Context, opts ListOptions) (ProxyServerList, error) {
	var list ProxyServerList
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("proxy-servers", opts.values()), nil), &list)
	return list, err
}

func (c *Client) CreateProxyServer(ctx context.Context, req ProxyServerCreate) (ProxyServer, error) {
	var proxy ProxyServer
	err := decode(c.Do(ctx, http.MethodPost, resourcePath("proxy-servers", url.Values{}), req), &proxy)
	return proxy, err
}

func (c *Client) DeleteProxyServer(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, resourcePath(fmt.Sprintf("proxy-servers/%d", id), url.Values{}), nil).Err()
}

func (c *Client) ListCrawlers(ctx context.Context, opts ListOptions) (CrawlerList, error) {
	var list CrawlerList
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("crawlers", opts.values()), nil), &list)
	return list, err
}

// TriggerCrawler starts a crawl run for the given crawler.
func (c *Client) TriggerCrawler(ctx context.Context, id int64) (CrawlerRun, error) {
	var run CrawlerRun
	err := decode(c.Do(ctx, http.MethodPost, resourcePath(fmt.Sprintf("crawlers/%d/run", id), url.Values{}), nil), &run)
	return run, err
}
