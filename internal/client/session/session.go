// Package session owns the session lifecycle: bootstrap from the credential
// store, login, logout, expiry handling, and donation-status updates pushed
// from the live channel. The manager is the only writer of the credential
// store; everything else reads the immutable snapshots it publishes.
package session

import (
	"github.com/dmitrijs2005/courtside/internal/client/models"
)

// Session is the published snapshot of the authentication state.
//
// Invariants: IsAuthenticated is true iff a non-expired token is stored and
// User is populated. Loading is true only during the bootstrap read, never
// during login or logout.
type Session struct {
	IsAuthenticated bool
	User            *models.UserRecord
	Loading         bool
}

// Donated reports the donation status of the current user, false when
// unauthenticated.
func (s Session) Donated() bool {
	return s.User != nil && s.User.Donated
}
