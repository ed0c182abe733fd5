package repository

import (
	"context"
	"fmt"
	"time"
)

// TokenRepository records revoked access tokens by their id.
type TokenRepository interface {
	Revoke(ctx context.Context, jti string, userID int64, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// PurgeExpired drops revocations whose tokens have expired anyway.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokenRepository struct {
	db DBTX
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db DBTX) TokenRepository {
	return &tokenRepository{db: db}
}

// Revoke is idempotent.
func (r *tokenRepository) Revoke(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	sql := `INSERT INTO revoked_tokens (jti, user_id, expires_at) VALUES ($1, $2, $3) ON CONFLICT (jti) DO NOTHING`
	if _, err := r.db.Exec(ctx, sql, jti, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *tokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`, jti).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

func (r *tokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
