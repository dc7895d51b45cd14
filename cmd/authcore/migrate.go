// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mkwkamil/LoginComponentBackend/internal/store"
)

// newMigrateCmd creates the migrate command and its subcommands. Running
// migrate with no subcommand applies all pending migrations.
func newMigrateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
		Long:  `Apply, roll back or inspect the accounts and revocation schema.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withMigrator(func(m Migrator) error { return migrateUp(cmd, m, 0) })
		},
	}

	cmd.AddCommand(newMigrateUpCmd(c))
	cmd.AddCommand(newMigrateDownCmd(c))
	cmd.AddCommand(newMigrateStatusCmd(c))
	cmd.AddCommand(newMigrateForceCmd(c))

	return cmd
}

func newMigrateUpCmd(c *cli) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withMigrator(func(m Migrator) error { return migrateUp(cmd, m, steps) })
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to apply (0 = all)")
	return cmd
}

func newMigrateDownCmd(c *cli) *cobra.Command {
	var (
		steps int
		yes   bool
	)
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Long: `Roll back migrations. Without --steps every migration is rolled back,
which drops all accounts and revocations; this requires --yes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 0 {
				return oops.Code("INVALID_STEPS").Errorf("--steps must be non-negative, got %d", steps)
			}
			if steps == 0 && !yes {
				return oops.Code("CONFIRMATION_REQUIRED").Errorf("rolling back every migration drops all data; pass --yes to confirm")
			}
			return c.withMigrator(func(m Migrator) error {
				if steps > 0 {
					cmd.Printf("Rolling back %d migration(s)...\n", steps)
					if err := m.Steps(-steps); err != nil {
						return err
					}
				} else {
					cmd.Println("Rolling back all migrations...")
					if err := m.Down(); err != nil {
						return err
					}
				}
				cmd.Println("Rollback completed successfully")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to roll back (0 = all)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm rolling back every migration")
	return cmd
}

func newMigrateStatusCmd(c *cli) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "yaml" {
				return oops.Code("INVALID_FORMAT").Errorf("format must be 'text' or 'yaml', got %q", format)
			}
			return c.withMigrator(func(m Migrator) error {
				status, err := m.Status()
				if err != nil {
					return err
				}
				if format == "yaml" {
					return writeStatusYAML(cmd.OutOrStdout(), status)
				}
				writeStatusText(cmd.OutOrStdout(), status)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text or yaml)")
	return cmd
}

func newMigrateForceCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "force VERSION",
		Short: "Record a migration version without running it",
		Long: `Set the recorded schema version and clear the dirty flag. Use only after
repairing a failed migration by hand.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := parseForceVersion(args[0])
			if err != nil {
				return err
			}
			return c.withMigrator(func(m Migrator) error {
				if err := m.Force(version); err != nil {
					return err
				}
				cmd.Printf("Forced schema version to %d\n", version)
				return nil
			})
		},
	}
}

func migrateUp(cmd *cobra.Command, m Migrator, steps int) error {
	if steps < 0 {
		return oops.Code("INVALID_STEPS").Errorf("--steps must be non-negative, got %d", steps)
	}
	cmd.Println("Running migrations...")
	var err error
	if steps > 0 {
		err = m.Steps(steps)
	} else {
		err = m.Up()
	}
	if err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}
	cmd.Println("Migrations completed successfully")
	return nil
}

// withMigrator opens a migrator for the configured database, runs fn and
// closes the migrator.
func (c *cli) withMigrator(fn func(Migrator) error) (err error) {
	if err := c.cfg.RequireDatabase(); err != nil {
		return err
	}
	m, err := c.deps.MigratorFactory(c.cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(m)
}

// parseForceVersion parses a migration version argument. Parsing stops at the
// first non-digit after optional leading whitespace.
func parseForceVersion(arg string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(strings.TrimLeft(arg, " \t"), "%d", &version); err != nil {
		return 0, oops.Code("INVALID_VERSION").With("input", arg).Errorf("version must be an integer")
	}
	return version, nil
}

func writeStatusText(w io.Writer, status *store.Status) {
	fmt.Fprintf(w, "Version: %d", status.Version)
	if status.Dirty {
		fmt.Fprint(w, " (dirty)")
	}
	fmt.Fprintln(w)

	for _, mig := range status.Applied {
		fmt.Fprintf(w, "  [applied] %s\n", mig.Name)
	}
	for _, mig := range status.Pending {
		fmt.Fprintf(w, "  [pending] %s\n", mig.Name)
	}
}

type statusDocument struct {
	Version uint     `yaml:"version"`
	Dirty   bool     `yaml:"dirty"`
	Applied []string `yaml:"applied"`
	Pending []string `yaml:"pending"`
}

func writeStatusYAML(w io.Writer, status *store.Status) error {
	doc := statusDocument{
		Version: status.Version,
		Dirty:   status.Dirty,
		Applied: make([]string, 0, len(status.Applied)),
		Pending: make([]string, 0, len(status.Pending)),
	}
	for _, mig := range status.Applied {
		doc.Applied = append(doc.Applied, mig.Name)
	}
	for _, mig := range status.Pending {
		doc.Pending = append(doc.Pending, mig.Name)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return oops.Code("OUTPUT_FAILED").With("format", "yaml").Wrap(err)
	}
	return enc.Close()
}
