// Package api talks to the stats backend over HTTP. A single request path
// attaches the current access token to every outbound call and maps 401
// responses according to whether a token was present, so a rejected login
// attempt is never mistaken for an expired session.
package api

import (
	"context"

	"github.com/dmitrijs2005/courtside/internal/client/models"
)

// Profile is the server-issued part of the user record returned by login.
type Profile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Donated bool   `json:"donated"`
}

// LoginResult is a successful authentication response.
type LoginResult struct {
	AccessToken string  `json:"accessToken"`
	Profile     Profile `json:"profile"`
}

// AdminUser is a user record as seen from the admin panel.
type AdminUser struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// Client is the backend contract consumed by the session manager, the
// selection engine, and the telemetry recorder.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, email, password string) error

	ListTeams(ctx context.Context) ([]models.Team, error)
	FetchSummary(ctx context.Context, teamID string) (*models.TeamSummary, error)
	FetchDetail(ctx context.Context, teamID string) (*models.TeamDetail, error)

	RecordSelection(ctx context.Context, abbr string) error

	// Admin panel operations; the server authorizes them by role.
	ActiveUsers(ctx context.Context) (int, error)
	SearchUser(ctx context.Context, username string) (*AdminUser, error)
	SubmitDonation(ctx context.Context, username string, amount float64) error

	Close() error
}
