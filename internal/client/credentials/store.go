package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/dmitrijs2005/courtside/internal/dbx"
)

// Keys under which the session lives in the credentials table.
const (
	keyAccessToken = "access_token"
	keyUserRecord  = "user_record"
)

// Store is the typed credential store: one access token plus one serialized
// user record. Multi-key writes go through a transaction so the pair is
// persisted both-or-neither.
type Store struct {
	db   *sql.DB
	repo Repository
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repo: NewSQLiteRepository(db)}
}

// SaveSession persists the token and the user record atomically.
func (s *Store) SaveSession(ctx context.Context, tokenStr string, user *models.UserRecord) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(tokenStr)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUserRecord, data)
	})
}

// LoadSession reads the stored token and user record. Both return values are
// zero when nothing is stored. A token without a readable user record is
// treated as nothing stored.
func (s *Store) LoadSession(ctx context.Context) (string, *models.UserRecord, error) {
	tok, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", nil, err
	}
	if len(tok) == 0 {
		return "", nil, nil
	}

	data, err := s.repo.Get(ctx, keyUserRecord)
	if err != nil {
		return "", nil, err
	}
	if len(data) == 0 {
		return "", nil, nil
	}

	var user models.UserRecord
	if err := json.Unmarshal(data, &user); err != nil {
		return "", nil, fmt.Errorf("failed to decode user record: %w", err)
	}

	return string(tok), &user, nil
}

// Token returns the stored access token, or "" when absent. Used by the
// HTTP layer to attach the Authorization header.
func (s *Store) Token(ctx context.Context) string {
	tok, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return ""
	}
	return string(tok)
}

// SetDonated flips the persisted user record's donation flag to true.
// No-op when no record is stored.
func (s *Store) SetDonated(ctx context.Context) error {
	data, err := s.repo.Get(ctx, keyUserRecord)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var user models.UserRecord
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("failed to decode user record: %w", err)
	}
	user.Donated = true

	updated, err := json.Marshal(&user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	return s.repo.Set(ctx, keyUserRecord, updated)
}

// Clear wipes the stored session. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
