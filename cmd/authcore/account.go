// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAccountCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAccountAddCmd(c))
	cmd.AddCommand(newAccountExistsCmd(c))
	cmd.AddCommand(newAccountShowCmd(c))

	return cmd
}

func newAccountAddCmd(c *cli) *cobra.Command {
	var publicName string
	cmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Register a new account",
		Long: `Register a new account. The password is read from the terminal without
echo, or from the first line of standard input when it is not a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := c.deps.PasswordReader(cmd)
			if err != nil {
				return err
			}
			return c.withService(cmd.Context(), func(ctx context.Context, svc AuthService) error {
				account, err := svc.Register(ctx, args[0], password, publicName)
				if err != nil {
					return err
				}
				cmd.Printf("Account %s created (id %s)\n", account.Username, account.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&publicName, "public-name", "", "display name (default: the username)")
	return cmd
}

func newAccountExistsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "exists USERNAME",
		Short: "Report whether an account exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd.Context(), func(ctx context.Context, svc AuthService) error {
				exists, err := svc.UserExists(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), exists)
				return nil
			})
		},
	}
}

func newAccountShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show USERNAME",
		Short: "Show an account's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd.Context(), func(ctx context.Context, svc AuthService) error {
				account, err := svc.GetByUsername(ctx, args[0])
				if err != nil {
					return err
				}
				profile := account.Profile()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:          %s\n", profile.ID)
				fmt.Fprintf(out, "Username:    %s\n", profile.Username)
				fmt.Fprintf(out, "Public name: %s\n", profile.PublicName)
				fmt.Fprintf(out, "Created:     %s\n", profile.CreatedAt.Format(time.RFC3339))
				return nil
			})
		},
	}
}

// withService builds the auth service, runs fn and releases the service.
func (c *cli) withService(ctx context.Context, fn func(context.Context, AuthService) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	svc, cleanup, err := c.deps.ServiceFactory(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, svc)
}
