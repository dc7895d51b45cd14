// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"context"
	"log/slog"

	"github.com/samber/oops"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
	"github.com/mkwkamil/LoginComponentBackend/internal/auth/cache"
	"github.com/mkwkamil/LoginComponentBackend/internal/auth/jwt"
	"github.com/mkwkamil/LoginComponentBackend/internal/auth/postgres"
	"github.com/mkwkamil/LoginComponentBackend/internal/config"
	"github.com/mkwkamil/LoginComponentBackend/internal/store"
)

// newAuthService wires the PostgreSQL repositories, JWT issuer and argon2id
// hasher into an auth.Service. A positive cache life window puts the
// revocation ledger behind an in-memory cache.
func newAuthService(ctx context.Context, cfg *config.Config) (AuthService, func(), error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireJWT(); err != nil {
		return nil, nil, err
	}

	issuer, err := jwt.NewIssuer(cfg.IssuerConfig())
	if err != nil {
		return nil, nil, err
	}

	pool, err := store.NewPool(ctx, cfg.Database.URL, cfg.PoolConfig())
	if err != nil {
		return nil, nil, err
	}

	var ledger auth.RevocationLedger = postgres.NewRevocationRepository(pool)
	cleanup := pool.Close

	if window := cfg.Revocation.CacheLifeWindow; window > 0 {
		cached, err := cache.NewCachedLedger(ctx, ledger, window)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		ledger = cached
		cleanup = func() {
			if err := cached.Close(); err != nil {
				slog.Warn("failed to close revocation cache", "error", err)
			}
			pool.Close()
		}
	}

	svc, err := auth.NewAuthServiceWithLogger(
		postgres.NewAccountRepository(pool),
		issuer,
		ledger,
		auth.NewArgon2idHasher(),
		slog.Default(),
	)
	if err != nil {
		cleanup()
		return nil, nil, oops.With("operation", "build auth service").Wrap(err)
	}
	return svc, cleanup, nil
}

// newRevocationLedger opens the PostgreSQL revocation ledger.
func newRevocationLedger(ctx context.Context, cfg *config.Config) (auth.RevocationLedger, func(), error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	pool, err := store.NewPool(ctx, cfg.Database.URL, cfg.PoolConfig())
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewRevocationRepository(pool), pool.Close, nil
}
