package token

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/courtside/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestDecode_FullClaimSet(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signToken(t, jwt.MapClaims{
		"exp":               exp.Unix(),
		"sub":               "user-42",
		common.ClaimKeyRole: "Admin",
		common.ClaimKeyName: "jordan@example.com",
	})

	c, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, exp.Unix(), c.ExpiresAt.Unix())
	assert.Equal(t, "user-42", c.Subject)
	assert.Equal(t, "Admin", c.Role)
	assert.Equal(t, "jordan@example.com", c.DisplayName)
}

func TestDecode_AbsentOptionalClaims(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	c, err := Decode(raw)
	require.NoError(t, err)

	assert.Empty(t, c.Subject)
	assert.Empty(t, c.Role)
	assert.Empty(t, c.DisplayName)
}

func TestDecode_RoleArrayTakesFirst(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"exp":               time.Now().Add(time.Hour).Unix(),
		common.ClaimKeyRole: []string{"Admin", "User"},
	})

	c, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Admin", c.Role)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("definitely-not-a-jwt")
	require.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestDecode_MissingExpiry(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "user-42"})

	_, err := Decode(raw)
	require.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()

	c := &Claims{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, c.Expired(now))

	c = &Claims{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, c.Expired(now))

	// expiry exactly now counts as expired
	c = &Claims{ExpiresAt: now}
	assert.True(t, c.Expired(now))
}
