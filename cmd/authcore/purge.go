// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
)

// shutdownTimeout bounds how long servers get to stop.
const shutdownTimeout = 5 * time.Second

func newPurgeCmd(c *cli) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove expired revocation records",
		Long: `Remove revocation records whose expiry has passed. With --watch, keep
running and purge every --purge-interval, serving metrics and health probes
on --metrics-addr until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if watch {
				return c.runPurgeWatch(ctx, cmd)
			}
			return c.runPurgeOnce(ctx, cmd)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "purge periodically until interrupted")
	return cmd
}

func (c *cli) runPurgeOnce(ctx context.Context, cmd *cobra.Command) error {
	ledger, cleanup, err := c.deps.LedgerFactory(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	purger := auth.NewRevocationPurger(ledger, c.cfg.Revocation.PurgeInterval,
		auth.WithPurgeLogger(slog.Default()))

	purged, err := purger.RunOnce(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("Purged %d expired revocation(s)\n", purged)
	return nil
}

func (c *cli) runPurgeWatch(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ledger, cleanup, err := c.deps.LedgerFactory(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []auth.PurgerOption{auth.WithPurgeLogger(slog.Default())}

	var ready atomic.Bool
	var obsServer ObservabilityServer
	if addr := c.cfg.Metrics.Addr; addr != "" {
		obsServer = c.deps.ObservabilityServerFactory(addr, ready.Load)
		obsErrChan, err := obsServer.Start()
		if err != nil {
			return oops.With("operation", "start observability server").Wrap(err)
		}
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
		opts = append(opts, auth.WithPurgeMetrics(obsServer.Metrics()))
		slog.Info("observability server started", "addr", obsServer.Addr())
	}

	purger := auth.NewRevocationPurger(ledger, c.cfg.Revocation.PurgeInterval, opts...)
	purger.Start(ctx)
	ready.Store(true)

	cmd.Println("Revocation purger started")
	slog.Info("revocation purger running", "interval", c.cfg.Revocation.PurgeInterval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down")
	}

	ready.Store(false)
	purger.Stop()

	if obsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := obsServer.Stop(shutdownCtx); err != nil {
			slog.Warn("error stopping observability server", "error", err)
		}
	}

	slog.Info("shutdown complete")
	return nil
}

// monitorServerErrors cancels ctx when a background server reports an error.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string) {
	select {
	case err, ok := <-errCh:
		if !ok {
			return
		}
		if err != nil {
			slog.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
	}
}
