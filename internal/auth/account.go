// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Account represents a registered user.
//
// PasswordHash and PasswordSalt never leave this package's trust boundary in
// serialized form; both are excluded from JSON encoding.
type Account struct {
	ID           ulid.ULID `json:"id"`
	Username     string    `json:"username"`
	PublicName   string    `json:"public_name"`
	PasswordHash []byte    `json:"-"`
	PasswordSalt []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountProfile is the credential-free view of an Account.
type AccountProfile struct {
	ID         ulid.ULID `json:"id"`
	Username   string    `json:"username"`
	PublicName string    `json:"public_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAccount creates a validated Account with a fresh ID.
// An empty publicName defaults to the username.
func NewAccount(username, publicName string, passwordHash, passwordSalt []byte) (*Account, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 || len(passwordSalt) == 0 {
		return nil, oops.Code("AUTH_INVALID_CREDENTIAL").Errorf("password hash and salt are required")
	}
	if publicName == "" {
		publicName = username
	}

	return &Account{
		ID:           ulid.Make(),
		Username:     username,
		PublicName:   publicName,
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Profile returns the account without credential material.
func (a *Account) Profile() AccountProfile {
	return AccountProfile{
		ID:         a.ID,
		Username:   a.Username,
		PublicName: a.PublicName,
		CreatedAt:  a.CreatedAt,
	}
}

// ValidateUsername rejects the empty username. Any other string is a valid,
// case-sensitive identifier; "Alice" and "alice" are distinct accounts, and
// e-mail addresses or dotted names are accepted as given.
func ValidateUsername(username string) error {
	if username == "" {
		return oops.Code("AUTH_INVALID_USERNAME").Errorf("username cannot be empty")
	}
	return nil
}

// AccountRepository manages account persistence.
type AccountRepository interface {
	// Create stores a new account. Returns an error wrapping ErrDuplicate
	// if the username is already taken.
	Create(ctx context.Context, account *Account) error

	// GetByUsername retrieves an account by exact (case-sensitive) username.
	// Returns an error wrapping ErrNotFound if no account matches.
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// ExistsByUsername reports whether an account with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// UpdateCredentials replaces the stored hash and salt for an account.
	UpdateCredentials(ctx context.Context, id ulid.ULID, passwordHash, passwordSalt []byte) error
}
