// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
)

// RevocationRepository implements auth.RevocationLedger using PostgreSQL.
// Tokens are stored by their SHA256 hash.
type RevocationRepository struct {
	pool  poolIface
	clock func() time.Time
}

// NewRevocationRepository creates a new RevocationRepository.
func NewRevocationRepository(pool poolIface) *RevocationRepository {
	return NewRevocationRepositoryWithClock(pool, time.Now)
}

// NewRevocationRepositoryWithClock creates a RevocationRepository that
// evaluates expiry against clock.
func NewRevocationRepositoryWithClock(pool poolIface, clock func() time.Time) *RevocationRepository {
	return &RevocationRepository{pool: pool, clock: clock}
}

// Add denylists token until expiresAt. Re-adding keeps the later expiry.
func (r *RevocationRepository) Add(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO revoked_tokens (token_hash, expires_at, revoked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token_hash) DO UPDATE
		SET expires_at = GREATEST(revoked_tokens.expires_at, EXCLUDED.expires_at)
	`, auth.HashToken(token), expiresAt, r.clock())
	if err != nil {
		return oops.Code(auth.CodePersistence).
			With("operation", "insert revoked token").
			Wrap(err)
	}
	return nil
}

// Contains reports whether token has a non-expired record.
func (r *RevocationRepository) Contains(ctx context.Context, token string) (bool, error) {
	var revoked bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM revoked_tokens
			WHERE token_hash = $1 AND expires_at > $2
		)
	`, auth.HashToken(token), r.clock()).Scan(&revoked)
	if err != nil {
		return false, oops.Code(auth.CodePersistence).
			With("operation", "check revoked token").
			Wrap(err)
	}
	return revoked, nil
}

// Lookup returns the non-expired record for token.
func (r *RevocationRepository) Lookup(ctx context.Context, token string) (auth.RevocationRecord, bool, error) {
	record := auth.RevocationRecord{TokenHash: auth.HashToken(token)}
	err := r.pool.QueryRow(ctx, `
		SELECT expires_at FROM revoked_tokens
		WHERE token_hash = $1 AND expires_at > $2
	`, record.TokenHash, r.clock()).Scan(&record.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.RevocationRecord{}, false, nil
	}
	if err != nil {
		return auth.RevocationRecord{}, false, oops.Code(auth.CodePersistence).
			With("operation", "lookup revoked token").
			Wrap(err)
	}
	return record, true, nil
}

// PurgeExpired deletes records whose expiry has passed.
func (r *RevocationRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM revoked_tokens WHERE expires_at <= $1`,
		r.clock(),
	)
	if err != nil {
		return 0, oops.Code(auth.CodePersistence).
			With("operation", "purge expired revoked tokens").
			Wrap(err)
	}
	return result.RowsAffected(), nil
}

// Compile-time interface check.
var (
	_ auth.RevocationLedger = (*RevocationRepository)(nil)
	_ auth.RevocationLookup = (*RevocationRepository)(nil)
)
