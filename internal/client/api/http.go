package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/dmitrijs2005/courtside/internal/common"
	"github.com/dmitrijs2005/courtside/internal/logging"
)

// TokenSource yields the current access token, or "" when no session exists.
type TokenSource func(ctx context.Context) string

// HTTPClient implements Client against the JSON backend.
//
// The onUnauthorized hook fires when an authenticated request comes back
// 401, i.e. the session died mid-use. It is never fired for a rejected
// login attempt, which carries no token.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthorized func(), log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:        baseURL,
		http:           &http.Client{Timeout: timeout},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// do is the single request/response interceptor: it attaches the bearer
// token when one exists, performs the call, and maps error statuses to
// sentinel errors. Out, when non-nil, receives the decoded JSON body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	tok := c.tokens(ctx)
	if tok != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.mapStatus(ctx, resp.StatusCode, tok != ""); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// mapStatus translates non-2xx statuses. A 401 invalidates the session only
// if a token was attached before the call.
func (c *HTTPClient) mapStatus(ctx context.Context, status int, hadToken bool) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized && hadToken:
		c.log.Warn(ctx, "authenticated request rejected, invalidating session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return common.ErrSessionExpired
	case status == http.StatusUnauthorized:
		return common.ErrBadCredentials
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status >= 500:
		return fmt.Errorf("%w: status %d", common.ErrUnavailable, status)
	default:
		return fmt.Errorf("unexpected status %d", status)
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req := map[string]string{"email": email, "password": password}

	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	req := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/register", req, nil)
}

func (c *HTTPClient) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := c.do(ctx, http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *HTTPClient) FetchSummary(ctx context.Context, teamID string) (*models.TeamSummary, error) {
	var s models.TeamSummary
	if err := c.do(ctx, http.MethodGet, "/teams/"+url.PathEscape(teamID)+"/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) FetchDetail(ctx context.Context, teamID string) (*models.TeamDetail, error) {
	var d models.TeamDetail
	if err := c.do(ctx, http.MethodGet, "/teams/"+url.PathEscape(teamID)+"/detail", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) RecordSelection(ctx context.Context, abbr string) error {
	req := map[string]string{"abbr": abbr}
	return c.do(ctx, http.MethodPost, "/telemetry/selection", req, nil)
}

func (c *HTTPClient) ActiveUsers(ctx context.Context) (int, error) {
	var res struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/active-users", nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (c *HTTPClient) SearchUser(ctx context.Context, username string) (*AdminUser, error) {
	var u AdminUser
	path := "/api/admin/search?username=" + url.QueryEscape(username)
	if err := c.do(ctx, http.MethodGet, path, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) SubmitDonation(ctx context.Context, username string, amount float64) error {
	req := map[string]any{"username": username, "amount": amount}
	return c.do(ctx, http.MethodPost, "/api/admin/donations", req, nil)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
