// Package token decodes the opaque signed access token into a claim set.
// Decoding is pure and local: no network access, no state.
//
// The client holds no signing key, so the signature is not verified here;
// the server remains the authority on token validity. The decoded claims are
// used only for expiry screening and for display fields (role, name).
package token

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/courtside/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims the client cares about. Role and
// DisplayName are read from fixed, well-known claim keys; if a key is absent
// the field stays empty. Only a missing or unreadable expiry is an error.
type Claims struct {
	ExpiresAt   time.Time
	Subject     string
	Role        string
	DisplayName string
}

// Expired reports whether the claims are expired at the given instant.
// A token expiring exactly now counts as expired.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// Decode parses the raw token and extracts the claim set. Malformed tokens
// and tokens without a decodable expiry yield common.ErrTokenInvalid.
func Decode(raw string) (*Claims, error) {
	parser := jwt.NewParser()

	mc := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, mc); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTokenInvalid, err)
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: no expiry claim", common.ErrTokenInvalid)
	}

	sub, _ := mc.GetSubject()

	return &Claims{
		ExpiresAt:   exp.Time,
		Subject:     sub,
		Role:        stringClaim(mc, common.ClaimKeyRole),
		DisplayName: stringClaim(mc, common.ClaimKeyName),
	}, nil
}

// stringClaim reads an optional string claim. ASP.NET Identity emits the
// role claim as either a single string or an array; for an array the first
// value wins.
func stringClaim(mc jwt.MapClaims, key string) string {
	switch v := mc[key].(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
