// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
	"github.com/mkwkamil/LoginComponentBackend/internal/config"
	"github.com/mkwkamil/LoginComponentBackend/pkg/errutil"
)

func TestAccountAndSessionCommands(t *testing.T) {
	ctx := context.Background()
	env, deps := newInMemoryDeps(t)

	res := execute(t, ctx, deps, "s3cret!\n", "account", "add", "bob")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Account bob created")

	res = execute(t, ctx, deps, "", "account", "exists", "bob")
	require.NoError(t, res.err)
	assert.Equal(t, "true\n", res.stdout)

	res = execute(t, ctx, deps, "", "account", "exists", "alice")
	require.NoError(t, res.err)
	assert.Equal(t, "false\n", res.stdout)

	res = execute(t, ctx, deps, "", "account", "show", "bob")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Username:    bob")
	assert.Contains(t, res.stdout, "Public name: bob")

	res = execute(t, ctx, deps, "wrong\n", "login", "bob")
	require.Error(t, res.err)
	errutil.AssertErrorCode(t, res.err, auth.CodeInvalidCredentials)

	res = execute(t, ctx, deps, "s3cret!\n", "login", "bob")
	require.NoError(t, res.err)
	token := strings.TrimSpace(res.stdout)
	require.NotEmpty(t, token)

	res = execute(t, ctx, deps, "", "verify", token)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Subject:    bob")

	res = execute(t, ctx, deps, "", "logout", token)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Token revoked")

	res = execute(t, ctx, deps, "", "verify", token)
	require.Error(t, res.err)
	errutil.AssertErrorCode(t, res.err, auth.CodeTokenRevoked)

	assert.Equal(t, 1, env.ledger.Len())
	assert.Equal(t, 9, env.cleanups, "every service use is released")
}

func TestAccountAdd_Duplicate(t *testing.T) {
	ctx := context.Background()
	_, deps := newInMemoryDeps(t)

	require.NoError(t, execute(t, ctx, deps, "first\n", "account", "add", "bob").err)

	res := execute(t, ctx, deps, "second\n", "account", "add", "bob")
	require.Error(t, res.err)
	errutil.AssertErrorCode(t, res.err, auth.CodeDuplicateUsername)

	res = execute(t, ctx, deps, "first\n", "login", "bob")
	require.NoError(t, res.err, "original credential still works")
}

func TestAccountAdd_PublicName(t *testing.T) {
	ctx := context.Background()
	env, deps := newInMemoryDeps(t)

	res := execute(t, ctx, deps, "s3cret!\n", "account", "add", "bob", "--public-name", "Bobby")
	require.NoError(t, res.err)

	account, err := env.accounts.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bobby", account.PublicName)
}

func TestAccountShow_Unknown(t *testing.T) {
	_, deps := newInMemoryDeps(t)

	res := execute(t, context.Background(), deps, "", "account", "show", "ghost")

	errutil.AssertErrorCode(t, res.err, auth.CodeAccountNotFound)
}

func TestLogout_InvalidToken(t *testing.T) {
	_, deps := newInMemoryDeps(t)

	res := execute(t, context.Background(), deps, "", "logout", "not-a-token")

	errutil.AssertErrorCode(t, res.err, auth.CodeInvalidToken)
}

func TestSessionCommands_PasswordReadFailure(t *testing.T) {
	_, deps := newInMemoryDeps(t)

	res := execute(t, context.Background(), deps, "", "login", "bob")

	errutil.AssertErrorCode(t, res.err, "PASSWORD_READ_FAILED")
}

func TestServiceFactoryErrorsSurface(t *testing.T) {
	deps := &Deps{
		ServiceFactory: func(context.Context, *config.Config) (AuthService, func(), error) {
			return nil, nil, oops.Code("DB_CONNECT_FAILED").Errorf("connection refused")
		},
		PasswordReader: func(*cobra.Command) (string, error) { return "pw", nil },
	}

	res := execute(t, context.Background(), deps, "", "account", "exists", "bob")

	errutil.AssertErrorCode(t, res.err, "DB_CONNECT_FAILED")
}
