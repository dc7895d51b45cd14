// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME",
		Short: "Authenticate and print a bearer token",
		Long: `Authenticate USERNAME and print the issued token on standard output.
The password is read the same way as for "account add".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := c.deps.PasswordReader(cmd)
			if err != nil {
				return err
			}
			return c.withService(cmd.Context(), func(ctx context.Context, svc AuthService) error {
				token, err := svc.Login(ctx, args[0], password)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout TOKEN",
		Short: "Revoke a bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd.Context(), func(ctx context.Context, svc AuthService) error {
				if err := svc.Logout(ctx, args[0]); err != nil {
					return err
				}
				cmd.Println("Token revoked")
				return nil
			})
		},
	}
}

func newVerifyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "verify TOKEN",
		Short: "Check that a bearer token is valid, unexpired and not revoked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd.Context(), func(ctx context.Context, svc AuthService) error {
				identity, err := svc.Authorize(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Subject:    %s\n", identity.Subject)
				fmt.Fprintf(out, "Account ID: %s\n", identity.AccountID)
				if !identity.ExpiresAt.IsZero() {
					fmt.Fprintf(out, "Expires:    %s\n", identity.ExpiresAt.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}
