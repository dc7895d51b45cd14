// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

// Package cache provides an in-process read cache in front of a revocation
// ledger.
package cache

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/samber/oops"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
)

// DefaultLifeWindow bounds how long a cached revocation is kept in memory.
const DefaultLifeWindow = 10 * time.Minute

// CachedLedger answers Contains from memory for tokens known to be revoked
// and falls through to the backing ledger otherwise. Only positive answers
// are cached, each with the expiry of the record it came from, so a cached
// entry never outlives the record it mirrors.
type CachedLedger struct {
	inner  auth.RevocationLedger
	lookup auth.RevocationLookup
	cache  *bigcache.BigCache
	clock  func() time.Time
}

// Option configures a CachedLedger.
type Option func(*CachedLedger)

// WithClock overrides the time source used to evaluate cached expiries.
func WithClock(clock func() time.Time) Option {
	return func(l *CachedLedger) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// NewCachedLedger wraps inner. If inner also implements auth.RevocationLookup,
// revocations found in it are cached as well as those added through the
// cache. lifeWindow <= 0 selects DefaultLifeWindow.
func NewCachedLedger(ctx context.Context, inner auth.RevocationLedger, lifeWindow time.Duration, opts ...Option) (*CachedLedger, error) {
	if inner == nil {
		return nil, oops.Code("CACHE_INVALID_CONFIG").Errorf("backing ledger is required")
	}
	if lifeWindow <= 0 {
		lifeWindow = DefaultLifeWindow
	}

	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.CleanWindow = lifeWindow
	cfg.Verbose = false

	bc, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, oops.Code("CACHE_INIT_FAILED").With("operation", "create revocation cache").Wrap(err)
	}

	l := &CachedLedger{inner: inner, cache: bc, clock: time.Now}
	if lookup, ok := inner.(auth.RevocationLookup); ok {
		l.lookup = lookup
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Add writes through to the backing ledger and caches the revocation.
func (l *CachedLedger) Add(ctx context.Context, token string, expiresAt time.Time) error {
	if err := l.inner.Add(ctx, token, expiresAt); err != nil {
		return err
	}
	key := auth.HashToken(token)
	if cached, ok := l.cached(key); ok && cached.After(expiresAt) {
		return nil
	}
	l.store(key, expiresAt)
	return nil
}

// Contains reports whether token is revoked, consulting the cache first.
func (l *CachedLedger) Contains(ctx context.Context, token string) (bool, error) {
	key := auth.HashToken(token)
	if exp, ok := l.cached(key); ok && l.clock().Before(exp) {
		return true, nil
	}

	if l.lookup == nil {
		return l.inner.Contains(ctx, token)
	}

	record, ok, err := l.lookup.Lookup(ctx, token)
	if err != nil {
		return false, err
	}
	if ok {
		l.store(key, record.ExpiresAt)
	}
	return ok, nil
}

// PurgeExpired delegates to the backing ledger. Expired cache entries are
// ignored on read and evicted by the cache itself.
func (l *CachedLedger) PurgeExpired(ctx context.Context) (int64, error) {
	return l.inner.PurgeExpired(ctx)
}

// Len returns the number of cached entries.
func (l *CachedLedger) Len() int {
	return l.cache.Len()
}

// Close releases the cache.
func (l *CachedLedger) Close() error {
	return l.cache.Close()
}

func (l *CachedLedger) cached(key string) (time.Time, bool) {
	buf, err := l.cache.Get(key)
	if err != nil || len(buf) != 8 {
		return time.Time{}, false
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(buf))), true //nolint:gosec // round-trips UnixNano
}

func (l *CachedLedger) store(key string, expiresAt time.Time) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(expiresAt.UnixNano())) //nolint:gosec // round-trips UnixNano
	_ = l.cache.Set(key, buf)                                   //nolint:errcheck // cache is best effort
}

// Compile-time interface check.
var _ auth.RevocationLedger = (*CachedLedger)(nil)
