// Package models defines the data types shared by the Courtside client
// components: the authenticated user record, selectable teams, player
// statistics, and live push snapshots.
package models

import (
	"time"

	"github.com/dmitrijs2005/courtside/internal/common"
)

// UserRecord merges the server-issued profile fields with the claims decoded
// from the access token. It is created on login or bootstrap, replaced
// wholesale on every login, and mutated only to flip Donated to true when a
// donation confirmation arrives for the current user.
type UserRecord struct {
	// Server-issued profile fields.
	ID      string `json:"id"`
	Email   string `json:"email"`
	Donated bool   `json:"donated"`

	// Decoded token claims. Role and DisplayName come from fixed claim
	// keys; when the claim is absent the field is empty.
	ExpiresAt   time.Time `json:"expiresAt"`
	Subject     string    `json:"subject"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
}

// IsAdmin reports whether the role claim marks the user as an administrator.
func (u *UserRecord) IsAdmin() bool {
	return u != nil && u.Role == common.RoleAdmin
}

// Clone returns an independent copy, so session snapshots stay immutable.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
