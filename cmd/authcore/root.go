// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/mkwkamil/LoginComponentBackend/internal/config"
	"github.com/mkwkamil/LoginComponentBackend/internal/logging"
	"github.com/mkwkamil/LoginComponentBackend/internal/xdg"
)

// serviceName identifies this binary in logs.
const serviceName = "authcore"

// cli holds state shared by every subcommand of one invocation.
type cli struct {
	configFile string
	cfg        *config.Config
	deps       *Deps
}

// NewRootCmd creates the root command for the authcore CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(deps *Deps) *cobra.Command {
	c := &cli{deps: deps.withDefaults()}

	cmd := &cobra.Command{
		Use:   "authcore",
		Short: "authcore - credential authentication administration",
		Long: `authcore manages the credential store: schema migrations, accounts,
token sessions and the revocation ledger.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.load,
	}

	cmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file path (default: $XDG_CONFIG_HOME/authcore/config.yaml if present)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newMigrateCmd(c))
	cmd.AddCommand(newAccountCmd(c))
	cmd.AddCommand(newLoginCmd(c))
	cmd.AddCommand(newLogoutCmd(c))
	cmd.AddCommand(newVerifyCmd(c))
	cmd.AddCommand(newPurgeCmd(c))
	cmd.AddCommand(newConfigCmd(c))

	return cmd
}

// load reads configuration and installs the default logger before any
// subcommand runs.
func (c *cli) load(cmd *cobra.Command, _ []string) error {
	path := c.configFile
	if path == "" {
		found, ok, err := xdg.FindConfigFile()
		if err != nil {
			return err
		}
		if ok {
			path = found
		}
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "log.level").Wrap(err)
	}
	slog.SetDefault(logging.Setup(serviceName, version, cfg.Log.Format, level, cmd.ErrOrStderr()))

	c.cfg = cfg
	return nil
}
