// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// Purger defaults.
const (
	DefaultPurgeInterval = time.Hour
	defaultPurgeRetries  = 3
	defaultPurgeBackoff  = 500 * time.Millisecond
)

// RevocationPurger periodically removes expired records from a ledger so the
// denylist does not grow without bound.
type RevocationPurger struct {
	ledger   RevocationLedger
	interval time.Duration
	backoff  time.Duration
	retries  uint64
	logger   *slog.Logger
	metrics  Metrics

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// PurgerOption configures a RevocationPurger during construction.
type PurgerOption func(*RevocationPurger)

// WithPurgeLogger sets the purger's logger.
func WithPurgeLogger(logger *slog.Logger) PurgerOption {
	return func(p *RevocationPurger) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPurgeMetrics reports purged record counts to m.
func WithPurgeMetrics(m Metrics) PurgerOption {
	return func(p *RevocationPurger) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithPurgeRetry sets how many times a failed purge is retried and the base
// delay of the exponential backoff between attempts.
func WithPurgeRetry(retries uint64, backoff time.Duration) PurgerOption {
	return func(p *RevocationPurger) {
		p.retries = retries
		if backoff > 0 {
			p.backoff = backoff
		}
	}
}

// NewRevocationPurger creates a purger. A non-positive interval falls back to
// DefaultPurgeInterval.
func NewRevocationPurger(ledger RevocationLedger, interval time.Duration, opts ...PurgerOption) *RevocationPurger {
	if interval <= 0 {
		interval = DefaultPurgeInterval
	}
	p := &RevocationPurger{
		ledger:   ledger,
		interval: interval,
		backoff:  defaultPurgeBackoff,
		retries:  defaultPurgeRetries,
		logger:   slog.Default(),
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunOnce purges expired records, retrying transient failures with
// exponential backoff. Returns the number of records removed.
func (p *RevocationPurger) RunOnce(ctx context.Context) (int64, error) {
	var purged int64
	b := retry.WithMaxRetries(p.retries, retry.NewExponential(p.backoff))

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		n, err := p.ledger.PurgeExpired(ctx)
		if err != nil {
			p.logger.WarnContext(ctx, "purge expired revocations failed, retrying", "error", err)
			return retry.RetryableError(err)
		}
		purged = n
		return nil
	})
	if err != nil {
		return 0, oops.Code(CodePersistence).
			With("operation", "purge expired revocations").
			Wrap(err)
	}

	p.metrics.RevocationsPurged(purged)
	if purged > 0 {
		p.logger.InfoContext(ctx, "purged expired revocations", "count", purged)
	}
	return purged, nil
}

// Start runs a purge immediately and then on every interval tick until Stop
// is called or ctx is cancelled. Calling Start on a running purger is a no-op.
func (p *RevocationPurger) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

// Stop cancels the background loop and waits for it to exit.
func (p *RevocationPurger) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *RevocationPurger) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if _, err := p.RunOnce(ctx); err != nil && ctx.Err() == nil {
			p.logger.ErrorContext(ctx, "revocation purge cycle failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
