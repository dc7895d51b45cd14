// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

import (
	"context"
	"sync"
	"time"
)

// RevocationHorizon is the minimum time a revoked token stays denylisted.
const RevocationHorizon = 24 * time.Hour

// RevocationRecord represents one denylisted token.
type RevocationRecord struct {
	TokenHash string
	ExpiresAt time.Time
}

// IsExpiredAt returns true if the record no longer needs to be enforced at t.
func (r RevocationRecord) IsExpiredAt(t time.Time) bool {
	return !t.Before(r.ExpiresAt)
}

// RevocationLedger records tokens that must be rejected even when otherwise
// valid. Implementations must be safe for concurrent use.
type RevocationLedger interface {
	// Add denylists token until expiresAt. Adding the same token again never
	// shortens an existing record's expiry.
	Add(ctx context.Context, token string, expiresAt time.Time) error

	// Contains reports whether a non-expired record exists for token.
	Contains(ctx context.Context, token string) (bool, error)

	// PurgeExpired removes records whose expiry has passed and returns the
	// count of deleted records.
	PurgeExpired(ctx context.Context) (int64, error)
}

// RevocationLookup is implemented by ledgers that can report the expiry of
// an active record.
type RevocationLookup interface {
	// Lookup returns the non-expired record for token, if any.
	Lookup(ctx context.Context, token string) (RevocationRecord, bool, error)
}

// MemoryLedger is an in-process RevocationLedger.
type MemoryLedger struct {
	mu      sync.RWMutex
	records map[string]RevocationRecord
	clock   func() time.Time
}

// NewMemoryLedger creates an empty MemoryLedger.
func NewMemoryLedger() *MemoryLedger {
	return NewMemoryLedgerWithClock(time.Now)
}

// NewMemoryLedgerWithClock creates an empty MemoryLedger that reads the
// current time from clock. Useful for testing with deterministic time values.
func NewMemoryLedgerWithClock(clock func() time.Time) *MemoryLedger {
	return &MemoryLedger{
		records: make(map[string]RevocationRecord),
		clock:   clock,
	}
}

// Add denylists token until expiresAt, keeping the later of two expiries.
func (l *MemoryLedger) Add(_ context.Context, token string, expiresAt time.Time) error {
	key := HashToken(token)

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.records[key]; ok && existing.ExpiresAt.After(expiresAt) {
		return nil
	}
	l.records[key] = RevocationRecord{TokenHash: key, ExpiresAt: expiresAt}
	return nil
}

// Contains reports whether token has a non-expired record.
func (l *MemoryLedger) Contains(_ context.Context, token string) (bool, error) {
	l.mu.RLock()
	record, ok := l.records[HashToken(token)]
	l.mu.RUnlock()

	return ok && !record.IsExpiredAt(l.clock()), nil
}

// Lookup returns the non-expired record for token.
func (l *MemoryLedger) Lookup(_ context.Context, token string) (RevocationRecord, bool, error) {
	l.mu.RLock()
	record, ok := l.records[HashToken(token)]
	l.mu.RUnlock()

	if !ok || record.IsExpiredAt(l.clock()) {
		return RevocationRecord{}, false, nil
	}
	return record, true, nil
}

// PurgeExpired removes all expired records.
func (l *MemoryLedger) PurgeExpired(_ context.Context) (int64, error) {
	now := l.clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	var purged int64
	for key, record := range l.records {
		if record.IsExpiredAt(now) {
			delete(l.records, key)
			purged++
		}
	}
	return purged, nil
}

// Len returns the number of records held, expired or not.
func (l *MemoryLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Compile-time interface check.
var (
	_ RevocationLedger = (*MemoryLedger)(nil)
	_ RevocationLookup = (*MemoryLedger)(nil)
)
