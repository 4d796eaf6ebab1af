package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

// Fields is a partial-update payload. Only the keys present are sent, so
// the server can tell an omitted column from one set to null.
type Fields map[string]interface{}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// AdService covers /ads.
type AdService struct{ c *Client }

type AdListParams struct {
	Status string
	Search string
}

func (s *AdService) List(ctx context.Context, p AdListParams) ([]model.Ad, error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	var out []model.Ad
	return out, s.c.do(ctx, http.MethodGet, "/ads", q, nil, &out)
}

func (s *AdService) Get(ctx context.Context, id int64) (*model.Ad, error) {
	var out model.Ad
	return &out, s.c.do(ctx, http.MethodGet, "/ads/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *AdService) Create(ctx context.Context, ad *model.Ad) (*model.Ad, error) {
	var out model.Ad
	return &out, s.c.do(ctx, http.MethodPost, "/ads", nil, ad, &out)
}

func (s *AdService) Update(ctx context.Context, id int64, fields Fields) (*model.Ad, error) {
	var out model.Ad
	return &out, s.c.do(ctx, http.MethodPut, "/ads/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *AdService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/ads/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// DealerService covers /dealers.
type DealerService struct{ c *Client }

type DealerListParams struct {
	Status string
	Search string
}

func (s *DealerService) List(ctx context.Context, p DealerListParams) ([]model.Dealer, error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	var out []model.Dealer
	return out, s.c.do(ctx, http.MethodGet, "/dealers", q, nil, &out)
}

func (s *DealerService) Get(ctx context.Context, id int64) (*model.Dealer, error) {
	var out model.Dealer
	return &out, s.c.do(ctx, http.MethodGet, "/dealers/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *DealerService) Create(ctx context.Context, dealer *model.Dealer) (*model.Dealer, error) {
	var out model.Dealer
	return &out, s.c.do(ctx, http.MethodPost, "/dealers", nil, dealer, &out)
}

func (s *DealerService) Update(ctx context.Context, id int64, fields Fields) (*model.Dealer, error) {
	var out model.Dealer
	return &out, s.c.do(ctx, http.MethodPut, "/dealers/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *DealerService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/dealers/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// CarRequestService covers /car-requests.
type CarRequestService struct{ c *Client }

type CarRequestListParams struct {
	Status string
	Search string
}

func (s *CarRequestService) List(ctx context.Context, p CarRequestListParams) ([]model.CarRequest, error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	var out []model.CarRequest
	return out, s.c.do(ctx, http.MethodGet, "/car-requests", q, nil, &out)
}

func (s *CarRequestService) Get(ctx context.Context, id int64) (*model.CarRequest, error) {
	var out model.CarRequest
	return &out, s.c.do(ctx, http.MethodGet, "/car-requests/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *CarRequestService) Create(ctx context.Context, req *model.CarRequest) (*model.CarRequest, error) {
	var out model.CarRequest
	return &out, s.c.do(ctx, http.MethodPost, "/car-requests", nil, req, &out)
}

func (s *CarRequestService) Update(ctx context.Context, id int64, fields Fields) (*model.CarRequest, error) {
	var out model.CarRequest
	return &out, s.c.do(ctx, http.MethodPut, "/car-requests/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *CarRequestService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/car-requests/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// UserService covers /users.
type UserService struct{ c *Client }

type UserListParams struct {
	Role   string
	Status string
	Search string
}

func (s *UserService) List(ctx context.Context, p UserListParams) ([]model.User, error) {
	q := url.Values{}
	if p.Role != "" {
		q.Set("role", p.Role)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	var out []model.User
	return out, s.c.do(ctx, http.MethodGet, "/users", q, nil, &out)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	var out model.User
	return &out, s.c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *UserService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	var out model.User
	return &out, s.c.do(ctx, http.MethodPost, "/users", nil, user, &out)
}

func (s *UserService) Update(ctx context.Context, id int64, fields Fields) (*model.User, error) {
	var out model.User
	return &out, s.c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// PaymentService covers /payments.
type PaymentService struct{ c *Client }

type PaymentListParams struct {
	AdID     string
	DealerID string
	Status   string
}

func (s *PaymentService) List(ctx context.Context, p PaymentListParams) ([]model.Payment, error) {
	q := url.Values{}
	if p.AdID != "" {
		q.Set("ad_id", p.AdID)
	}
	if p.DealerID != "" {
		q.Set("dealer_id", p.DealerID)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	var out []model.Payment
	return out, s.c.do(ctx, http.MethodGet, "/payments", q, nil, &out)
}

func (s *PaymentService) Get(ctx context.Context, id int64) (*model.Payment, error) {
	var out model.Payment
	return &out, s.c.do(ctx, http.MethodGet, "/payments/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *PaymentService) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	var out model.Payment
	return &out, s.c.do(ctx, http.MethodPost, "/payments", nil, payment, &out)
}

func (s *PaymentService) Update(ctx context.Context, id int64, fields Fields) (*model.Payment, error) {
	var out model.Payment
	return &out, s.c.do(ctx, http.MethodPut, "/payments/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/payments/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// FinanceService covers /finance and its aggregate endpoints.
type FinanceService struct{ c *Client }

type FinanceListParams struct {
	Type      string
	Category  string
	StartDate string
	EndDate   string
}

func (s *FinanceService) List(ctx context.Context, p FinanceListParams) ([]model.FinanceRecord, error) {
	q := url.Values{}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	var out []model.FinanceRecord
	return out, s.c.do(ctx, http.MethodGet, "/finance", q, nil, &out)
}

func (s *FinanceService) Get(ctx context.Context, id int64) (*model.FinanceRecord, error) {
	var out model.FinanceRecord
	return &out, s.c.do(ctx, http.MethodGet, "/finance/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *FinanceService) Create(ctx context.Context, record *model.FinanceRecord) (*model.FinanceRecord, error) {
	var out model.FinanceRecord
	return &out, s.c.do(ctx, http.MethodPost, "/finance", nil, record, &out)
}

func (s *FinanceService) Update(ctx context.Context, id int64, fields Fields) (*model.FinanceRecord, error) {
	var out model.FinanceRecord
	return &out, s.c.do(ctx, http.MethodPut, "/finance/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *FinanceService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/finance/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (s *FinanceService) Summary(ctx context.Context, startDate, endDate string) ([]model.FinanceSummaryRow, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	var out []model.FinanceSummaryRow
	return out, s.c.do(ctx, http.MethodGet, "/finance/summary", q, nil, &out)
}

// Dashboard fetches the tax/profit aggregate for the given period
// ("daily", "weekly", "monthly" or "yearly"; empty means monthly).
func (s *FinanceService) Dashboard(ctx context.Context, period string) (*model.FinanceDashboard, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var out model.FinanceDashboard
	return &out, s.c.do(ctx, http.MethodGet, "/finance/dashboard", q, nil, &out)
}

func (s *FinanceService) MonthlyTrend(ctx context.Context, months int) ([]model.MonthlyTrendRow, error) {
	q := url.Values{}
	if months > 0 {
		q.Set("months", strconv.Itoa(months))
	}
	var out []model.MonthlyTrendRow
	return out, s.c.do(ctx, http.MethodGet, "/finance/monthly-trend", q, nil, &out)
}

// SocialMediaService covers /social-media.
type SocialMediaService struct{ c *Client }

type SocialMediaListParams struct {
	Platform string
	Status   string
	AdID     string
}

func (s *SocialMediaService) List(ctx context.Context, p SocialMediaListParams) ([]model.SocialMediaPost, error) {
	q := url.Values{}
	if p.Platform != "" {
		q.Set("platform", p.Platform)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.AdID != "" {
		q.Set("ad_id", p.AdID)
	}
	var out []model.SocialMediaPost
	return out, s.c.do(ctx, http.MethodGet, "/social-media", q, nil, &out)
}

func (s *SocialMediaService) Get(ctx context.Context, id int64) (*model.SocialMediaPost, error) {
	var out model.SocialMediaPost
	return &out, s.c.do(ctx, http.MethodGet, "/social-media/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *SocialMediaService) Create(ctx context.Context, post *model.SocialMediaPost) (*model.SocialMediaPost, error) {
	var out model.SocialMediaPost
	return &out, s.c.do(ctx, http.MethodPost, "/social-media", nil, post, &out)
}

func (s *SocialMediaService) Update(ctx context.Context, id int64, fields Fields) (*model.SocialMediaPost, error) {
	var out model.SocialMediaPost
	return &out, s.c.do(ctx, http.MethodPut, "/social-media/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *SocialMediaService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/social-media/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// SupportTicketService covers /support-tickets.
type SupportTicketService struct{ c *Client }

type SupportTicketListParams struct {
	Status   string
	Priority string
	Category string
	Search   string
}

func (s *SupportTicketService) List(ctx context.Context, p SupportTicketListParams) ([]model.SupportTicket, error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Priority != "" {
		q.Set("priority", p.Priority)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	var out []model.SupportTicket
	return out, s.c.do(ctx, http.MethodGet, "/support-tickets", q, nil, &out)
}

func (s *SupportTicketService) Get(ctx context.Context, id int64) (*model.SupportTicket, error) {
	var out model.SupportTicket
	return &out, s.c.do(ctx, http.MethodGet, "/support-tickets/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *SupportTicketService) Create(ctx context.Context, ticket *model.SupportTicket) (*model.SupportTicket, error) {
	var out model.SupportTicket
	return &out, s.c.do(ctx, http.MethodPost, "/support-tickets", nil, ticket, &out)
}

func (s *SupportTicketService) Update(ctx context.Context, id int64, fields Fields) (*model.SupportTicket, error) {
	var out model.SupportTicket
	return &out, s.c.do(ctx, http.MethodPut, "/support-tickets/"+strconv.FormatInt(id, 10), nil, fields, &out)
}

func (s *SupportTicketService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/support-tickets/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// NotificationService covers /notifications.
type NotificationService struct{ c *Client }

type NotificationListParams struct {
	UserID string
	IsRead string
	Type   string
}

func (s *NotificationService) List(ctx context.Context, p NotificationListParams) ([]model.Notification, error) {
	q := url.Values{}
	if p.UserID != "" {
		q.Set("user_id", p.UserID)
	}
	if p.IsRead != "" {
		q.Set("is_read", p.IsRead)
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	var out []model.Notification
	return out, s.c.do(ctx, http.MethodGet, "/notifications", q, nil, &out)
}

func (s *NotificationService) Get(ctx context.Context, id int64) (*model.Notification, error) {
	var out model.Notification
	return &out, s.c.do(ctx, http.MethodGet, "/notifications/"+strconv.FormatInt(id, 10), nil, nil, &out)
}

func (s *NotificationService) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	var out model.Notification
	return &out, s.c.do(ctx, http.MethodPost, "/notifications", nil, n, &out)
}

// MarkRead flips a single notification's read flag.
func (s *NotificationService) MarkRead(ctx context.Context, id int64, isRead bool) (*model.Notification, error) {
	var out model.Notification
	body := Fields{"is_read": isRead}
	return &out, s.c.do(ctx, http.MethodPut, "/notifications/"+strconv.FormatInt(id, 10), nil, body, &out)
}

// MarkAllRead marks every notification of one user as read. Zero
// matching rows is not an error.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.c.do(ctx, http.MethodPut, "/notifications/mark-all-read/"+strconv.FormatInt(userID, 10), nil, nil, nil)
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/notifications/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// SettingService covers /settings. Settings are addressed by key, not id.
type SettingService struct{ c *Client }

func (s *SettingService) List(ctx context.Context, category string) ([]model.Setting, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	var out []model.Setting
	return out, s.c.do(ctx, http.MethodGet, "/settings", q, nil, &out)
}

func (s *SettingService) Get(ctx context.Context, key string) (*model.Setting, error) {
	var out model.Setting
	return &out, s.c.do(ctx, http.MethodGet, "/settings/"+url.PathEscape(key), nil, nil, &out)
}

// Upsert inserts the setting or overwrites the existing row with the
// same key.
func (s *SettingService) Upsert(ctx context.Context, setting *model.Setting) (*model.Setting, error) {
	var out model.Setting
	return &out, s.c.do(ctx, http.MethodPost, "/settings", nil, setting, &out)
}

func (s *SettingService) Update(ctx context.Context, key string, fields Fields) (*model.Setting, error) {
	var out model.Setting
	return &out, s.c.do(ctx, http.MethodPut, "/settings/"+url.PathEscape(key), nil, fields, &out)
}

func (s *SettingService) Delete(ctx context.Context, key string) error {
	return s.c.do(ctx, http.MethodDelete, "/settings/"+url.PathEscape(key), nil, nil, nil)
}

// DashboardService covers the /dashboard aggregates and the activity feed.
type DashboardService struct{ c *Client }

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	return &out, s.c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &out)
}

func (s *DashboardService) RecentAds(ctx context.Context, limit int) ([]model.Ad, error) {
	var out []model.Ad
	return out, s.c.do(ctx, http.MethodGet, "/dashboard/recent-ads", limitQuery(limit), nil, &out)
}

func (s *DashboardService) RecentRequests(ctx context.Context, limit int) ([]model.CarRequest, error) {
	var out []model.CarRequest
	return out, s.c.do(ctx, http.MethodGet, "/dashboard/recent-requests", limitQuery(limit), nil, &out)
}

func (s *DashboardService) TopDealers(ctx context.Context, limit int) ([]model.Dealer, error) {
	var out []model.Dealer
	return out, s.c.do(ctx, http.MethodGet, "/dashboard/top-dealers", limitQuery(limit), nil, &out)
}

func (s *DashboardService) CategoryDistribution(ctx context.Context) ([]model.CategoryShare, error) {
	var out []model.CategoryShare
	return out, s.c.do(ctx, http.MethodGet, "/dashboard/category-distribution", nil, nil, &out)
}

func (s *DashboardService) Activities(ctx context.Context, limit int) ([]model.Activity, error) {
	var out []model.Activity
	return out, s.c.do(ctx, http.MethodGet, "/dashboard/activities", limitQuery(limit), nil, &out)
}

func (s *DashboardService) CreateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	var out model.Activity
	return &out, s.c.do(ctx, http.MethodPost, "/dashboard/activities", nil, activity, &out)
}

// AuthService covers /auth. Login stores the returned token on the
// client so later calls carry it.
type AuthService struct{ c *Client }

type LoginResult struct {
	Admin model.Admin `json:"admin"`
	Token string      `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	s.c.Token = out.Token
	return &out, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	s.c.Token = ""
	return nil
}

func (s *AuthService) Me(ctx context.Context) (*model.Admin, error) {
	var out model.Admin
	return &out, s.c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out)
}

func (s *AuthService) UpdateProfile(ctx context.Context, fields Fields) (*model.Admin, error) {
	var out model.Admin
	return &out, s.c.do(ctx, http.MethodPut, "/auth/update-profile", nil, fields, &out)
}
