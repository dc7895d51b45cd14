// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
	"github.com/mkwkamil/LoginComponentBackend/internal/config"
	"github.com/mkwkamil/LoginComponentBackend/internal/observability"
	"github.com/mkwkamil/LoginComponentBackend/internal/store"
)

// Deps contains injectable dependencies for the CLI commands.
// All fields with nil values will use their default implementations.
type Deps struct {
	// MigratorFactory opens a schema migrator for a database URL.
	// Default: store.NewMigrator
	MigratorFactory func(databaseURL string) (Migrator, error)

	// ServiceFactory builds the authentication service from configuration.
	// The returned function releases its resources.
	// Default: newAuthService
	ServiceFactory func(ctx context.Context, cfg *config.Config) (AuthService, func(), error)

	// LedgerFactory opens the revocation ledger the purger compacts.
	// Default: newRevocationLedger
	LedgerFactory func(ctx context.Context, cfg *config.Config) (auth.RevocationLedger, func(), error)

	// ObservabilityServerFactory creates an observability server.
	// Default: observability.NewServer
	ObservabilityServerFactory func(addr string, readinessChecker observability.ReadinessChecker) ObservabilityServer

	// PasswordReader reads a password for the command.
	// Default: readPassword
	PasswordReader func(cmd *cobra.Command) (string, error)
}

// withDefaults returns a copy of d with every nil field set to its default.
func (d *Deps) withDefaults() *Deps {
	out := Deps{}
	if d != nil {
		out = *d
	}
	if out.MigratorFactory == nil {
		out.MigratorFactory = func(databaseURL string) (Migrator, error) {
			return store.NewMigrator(databaseURL)
		}
	}
	if out.ServiceFactory == nil {
		out.ServiceFactory = newAuthService
	}
	if out.LedgerFactory == nil {
		out.LedgerFactory = newRevocationLedger
	}
	if out.ObservabilityServerFactory == nil {
		out.ObservabilityServerFactory = func(addr string, readinessChecker observability.ReadinessChecker) ObservabilityServer {
			return observability.NewServer(addr, readinessChecker)
		}
	}
	if out.PasswordReader == nil {
		out.PasswordReader = readPassword
	}
	return &out
}

// Migrator interface wraps the methods used from store.Migrator.
type Migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Force(version int) error
	Status() (*store.Status, error)
	Close() error
}

// AuthService interface wraps the methods used from auth.Service.
type AuthService interface {
	Register(ctx context.Context, username, password, publicName string) (*auth.Account, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string) (*auth.Identity, error)
	UserExists(ctx context.Context, username string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*auth.Account, error)
}

// ObservabilityServer interface wraps the methods used from observability.Server.
type ObservabilityServer interface {
	Start() (<-chan error, error)
	Stop(ctx context.Context) error
	Addr() string
	Metrics() *observability.Metrics
}

// Compile-time interface checks.
var (
	_ Migrator            = (*store.Migrator)(nil)
	_ AuthService         = (*auth.Service)(nil)
	_ ObservabilityServer = (*observability.Server)(nil)
)
