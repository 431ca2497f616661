package credentials

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM credentials`)
	require.NoError(t, err)
	return db
}

func sampleUser() *models.UserRecord {
	return &models.UserRecord{
		ID:          "u-1",
		Email:       "fan@example.com",
		Donated:     false,
		ExpiresAt:   time.Now().Add(time.Hour).Truncate(time.Second),
		Subject:     "u-1",
		Role:        "",
		DisplayName: "fan@example.com",
	}
}

func TestStore_SaveAndLoadSession(t *testing.T) {
	db := setupDB(t)
	s := NewStore(db)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "tok-abc", sampleUser()))

	tok, user, err := s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "fan@example.com", user.Email)
	assert.False(t, user.Donated)
}

func TestStore_LoadSession_Empty(t *testing.T) {
	db := setupDB(t)
	s := NewStore(db)

	tok, user, err := s.LoadSession(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Nil(t, user)
}

func TestStore_Token(t *testing.T) {
	db := setupDB(t)
	s := NewStore(db)
	ctx := context.Background()

	assert.Empty(t, s.Token(ctx))

	require.NoError(t, s.SaveSession(ctx, "tok-xyz", sampleUser()))
	assert.Equal(t, "tok-xyz", s.Token(ctx))
}

func TestStore_SetDonated(t *testing.T) {
	db := setupDB(t)
	s := NewStore(db)
	ctx := context.Background()

	// no record stored: no-op, no error
	require.NoError(t, s.SetDonated(ctx))

	require.NoError(t, s.SaveSession(ctx, "tok", sampleUser()))
	require.NoError(t, s.SetDonated(ctx))

	_, user, err := s.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Donated)
}

func TestStore_Clear_Idempotent(t *testing.T) {
	db := setupDB(t)
	s := NewStore(db)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "tok", sampleUser()))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	tok, user, err := s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Nil(t, user)
}

func TestRepository_GetMissingKey(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	v, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRepository_SetOverwrites(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v1")))
	require.NoError(t, repo.Set(ctx, "k", []byte("v2")))

	v, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestRepository_Delete(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	require.NoError(t, repo.Delete(ctx, "k"))

	v, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}
