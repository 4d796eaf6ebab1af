// Package apiclient is a thin typed client for the admin REST API. It
// mirrors the server routes one-to-one and owns nothing beyond URL/query
// construction and envelope decoding.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   string

	Ads            *AdService
	Dealers        *DealerService
	CarRequests    *CarRequestService
	Users          *UserService
	Payments       *PaymentService
	Finance        *FinanceService
	SocialMedia    *SocialMediaService
	SupportTickets *SupportTicketService
	Notifications  *NotificationService
	Settings       *SettingService
	Dashboard      *DashboardService
	Auth           *AuthService
}

// New builds a client rooted at baseURL (e.g. "http://localhost:3001/api").
func New(baseURL string) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
	c.Ads = &AdService{c}
	c.Dealers = &DealerService{c}
	c.CarRequests = &CarRequestService{c}
	c.Users = &UserService{c}
	c.Payments = &PaymentService{c}
	c.Finance = &FinanceService{c}
	c.SocialMedia = &SocialMediaService{c}
	c.SupportTickets = &SupportTicketService{c}
	c.Notifications = &NotificationService{c}
	c.Settings = &SettingService{c}
	c.Dashboard = &DashboardService{c}
	c.Auth = &AuthService{c}
	return c
}

// APIError carries the server's {"error": ...} message and HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// do performs one request and decodes the {"data": ...} envelope into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}
