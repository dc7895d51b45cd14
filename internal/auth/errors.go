// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

import (
	"errors"

	"github.com/samber/oops"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by repositories when a uniqueness constraint
// rejects an insert.
var ErrDuplicate = errors.New("already exists")

// ErrEmptyPassword is returned by Register for an empty password. Hashers
// accept any string; refusing empty passwords is registration policy.
var ErrEmptyPassword = oops.Code("AUTH_EMPTY_PASSWORD").Errorf("password cannot be empty")

// Error codes surfaced to callers. Each identifies an error kind; callers
// match on the code, never on the message.
const (
	CodeDuplicateUsername  = "AUTH_DUPLICATE_USERNAME"
	CodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeInvalidToken       = "AUTH_INVALID_TOKEN"
	CodeTokenRevoked       = "AUTH_TOKEN_REVOKED"
	CodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	CodePersistence        = "AUTH_PERSISTENCE_FAILED"
	CodeTokenIssue         = "AUTH_TOKEN_ISSUE_FAILED"
	CodeAccountNotFound    = "AUTH_ACCOUNT_NOT_FOUND"
)
