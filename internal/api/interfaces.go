package api

import (
	"context"
	"time"
)

// AdminService abstracts the admin API operations.
// This interface allows for easy mocking in tests.
type AdminService interface {
	// Login authenticates and stores the issued token pair.
	Login(ctx context.Context, email, password string) error

	// Logout invalidates the session and clears stored credentials.
	Logout(ctx context.Context) error

	// Me fetches the authenticated administrator's profile.
	Me(ctx context.Context) (AdminProfile, error)

	// RefreshSession proactively exchanges the refresh token for a new pair.
	RefreshSession(ctx context.Context) error

	ListPromptTemplates(ctx context.Context, opts ListOptions) (PromptTemplateList, error)
	GetPromptTemplate(ctx context.Context, id int64) (PromptTemplate, error)
	CreatePromptTemplate(ctx context.Context, req PromptTemplateCreate) (PromptTemplate, error)
	UpdatePromptTemplate(ctx context.Context, id int64, req PromptTemplateUpdate) (PromptTemplate, error)
	DeletePromptTemplate(ctx context.Context, id int64) error

	ListUsers(ctx context.Context, opts ListOptions) (UserList, error)
	GetUser(ctx context.Context, id int64) (User, error)
	CreateUser(ctx context.Context, req UserCreate) (User, error)
	UpdateUser(ctx context.Context, id int64, req UserUpdate) (User, error)
	DeleteUser(ctx context.Context, id int64) error

	ListAdmins(ctx context.Context, opts ListOptions) (AdminList, error)
	CreateAdmin(ctx context.Context, req AdminCreate) (Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error

	ListPayments(ctx context.Context, opts ListOptions) (PaymentList, error)
	GetPayment(ctx context.Context, id int64) (Payment, error)

	ListAmazonAccounts(ctx context.Context, opts ListOptions) (AmazonAccountList, error)
	CreateAmazonAccount(ctx context.Context, req AmazonAccountCreate) (AmazonAccount, error)
	DeleteAmazonAccount(ctx context.Context, id int64) error

	ListProxyServers(ctx context.Context, opts ListOptions) (ProxyServerList, error)
	CreateProxyServer(ctx context.Context, req ProxyServerCreate) (ProxyServer, error)
	DeleteProxyServer(ctx context.Context, id int64) error

	ListCrawlers(ctx context.Context, opts ListOptions) (CrawlerList, error)
	TriggerCrawler(ctx context.Context, id int64) (CrawlerRun, error)

	ListSettings(ctx context.Context) ([]Setting, error)
	UpdateSetting(ctx context.Context, key, value string) (Setting, error)

	GetAnalyticsSummary(ctx context.Context) (AnalyticsSummary, error)
	GetUsageSeries(ctx context.Context, from, to time.Time) ([]UsagePoint, error)
}

// Ensure Client implements AdminService
var _ AdminService = (*Client)(nil)
