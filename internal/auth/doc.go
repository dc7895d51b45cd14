// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

// Package auth provides credential authentication primitives.
//
// # Domain Types
//
// Accounts should be created with NewAccount, which validates the username
// and requires credential material. Repository implementations receive
// pre-validated accounts.
//
// # Ports
//
// The package depends on three injected collaborators:
//   - AccountRepository - persists and retrieves accounts
//   - TokenIssuer - creates and validates opaque bearer tokens
//   - RevocationLedger - denylists tokens until an expiry
//
// # Services
//
// Service coordinates register, login, logout and lookup. RevocationPurger
// compacts a ledger in the background. Both are created with constructors
// that validate their dependencies.
package auth
