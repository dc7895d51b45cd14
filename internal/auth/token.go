// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/oklog/ulid/v2"
)

// Identity is what a token issuer recovers from a well-formed token.
type Identity struct {
	Subject   string
	AccountID ulid.ULID
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsExpiredAt returns true if the token's own validity window has ended at t.
// A token is expired at and after its ExpiresAt instant. A zero ExpiresAt
// means the issuer encoded no expiry.
func (i *Identity) IsExpiredAt(t time.Time) bool {
	return !i.ExpiresAt.IsZero() && !t.Before(i.ExpiresAt)
}

// TokenIssuer creates opaque bearer tokens and recovers identities from them.
type TokenIssuer interface {
	// Create issues a signed token for the account.
	Create(account *Account) (string, error)

	// Validate checks the token's structure and signature and returns the
	// identity it carries. It does not require the token to be unexpired;
	// callers decide whether expiry matters for their operation.
	Validate(token string) (*Identity, error)
}

// HashToken computes the SHA256 hash of a bearer token.
// Ledgers key their records by this hash so raw tokens are never persisted.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
