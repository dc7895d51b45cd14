// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("authcore/auth")

// Service orchestrates registration, login, logout and account lookup.
//
// Service holds no mutable state of its own; all shared state lives behind
// the injected repositories and ledger.
type Service struct {
	accounts AccountRepository
	tokens   TokenIssuer
	ledger   RevocationLedger
	hasher   CredentialHasher
	logger   *slog.Logger
	metrics  Metrics
	clock    func() time.Time

	// Credential verified when the username is unknown so that both login
	// failure paths cost one hash computation.
	dummyHash []byte
	dummySalt []byte
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithClock overrides the time source used for revocation horizons and
// expiry checks.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithMetrics reports authentication outcomes to m.
func WithMetrics(m Metrics) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewAuthService creates a new Service that logs to slog.Default().
func NewAuthService(
	accounts AccountRepository,
	tokens TokenIssuer,
	ledger RevocationLedger,
	hasher CredentialHasher,
	opts ...ServiceOption,
) (*Service, error) {
	return NewAuthServiceWithLogger(accounts, tokens, ledger, hasher, slog.Default(), opts...)
}

// NewAuthServiceWithLogger creates a new Service with an explicit logger.
func NewAuthServiceWithLogger(
	accounts AccountRepository,
	tokens TokenIssuer,
	ledger RevocationLedger,
	hasher CredentialHasher,
	logger *slog.Logger,
	opts ...ServiceOption,
) (*Service, error) {
	if accounts == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("accounts repository is required")
	}
	if tokens == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("token issuer is required")
	}
	if ledger == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("revocation ledger is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("credential hasher is required")
	}
	if logger == nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").Errorf("logger is required")
	}

	dummyHash, dummySalt, err := hasher.Hash(ulid.Make().String())
	if err != nil {
		return nil, oops.Code("AUTH_INVALID_CONFIG").
			With("operation", "derive dummy credential").
			Wrap(err)
	}

	s := &Service{
		accounts:  accounts,
		tokens:    tokens,
		ledger:    ledger,
		hasher:    hasher,
		logger:    logger,
		metrics:   noopMetrics{},
		clock:     time.Now,
		dummyHash: dummyHash,
		dummySalt: dummySalt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register creates an account with a freshly hashed password.
// An empty publicName defaults to the username.
func (s *Service) Register(ctx context.Context, username, password, publicName string) (_ *Account, err error) {
	ctx, span := tracer.Start(ctx, "auth.register",
		trace.WithAttributes(attribute.String("auth.username", username)),
	)
	defer func() { endSpan(span, err) }()

	if err := ValidateUsername(username); err != nil {
		s.metrics.Registration(ResultInvalid)
		return nil, err
	}
	if password == "" {
		s.metrics.Registration(ResultInvalid)
		return nil, ErrEmptyPassword
	}

	exists, err := s.accounts.ExistsByUsername(ctx, username)
	if err != nil {
		s.metrics.Registration(ResultError)
		return nil, persistenceError("check username", err)
	}
	if exists {
		s.metrics.Registration(ResultDuplicate)
		return nil, duplicateUsernameError(username, nil)
	}

	hash, salt, err := s.hasher.Hash(password)
	if err != nil {
		s.metrics.Registration(ResultInvalid)
		return nil, err
	}

	account, err := NewAccount(username, publicName, hash, salt)
	if err != nil {
		s.metrics.Registration(ResultInvalid)
		return nil, err
	}
	account.CreatedAt = s.clock().UTC()

	if err := s.accounts.Create(ctx, account); err != nil {
		// The existence check and the insert race; the unique index decides.
		if errors.Is(err, ErrDuplicate) {
			s.metrics.Registration(ResultDuplicate)
			return nil, duplicateUsernameError(username, err)
		}
		s.metrics.Registration(ResultError)
		return nil, persistenceError("create account", err)
	}

	s.metrics.Registration(ResultSuccess)
	s.logger.InfoContext(ctx, "account registered",
		"account_id", account.ID.String(),
		"username", account.Username)
	return account, nil
}

// Login verifies the credentials and returns a freshly issued token.
// Unknown usernames and wrong passwords produce the same error and cost the
// same single hash verification.
func (s *Service) Login(ctx context.Context, username, password string) (_ string, err error) {
	ctx, span := tracer.Start(ctx, "auth.login",
		trace.WithAttributes(attribute.String("auth.username", username)),
	)
	defer func() { endSpan(span, err) }()

	account, lookupErr := s.accounts.GetByUsername(ctx, username)
	if lookupErr != nil {
		if !errors.Is(lookupErr, ErrNotFound) {
			s.metrics.LoginAttempt(ResultError)
			return "", persistenceError("get account by username", lookupErr)
		}
		s.hasher.Verify(password, s.dummyHash, s.dummySalt)
		s.metrics.LoginAttempt(ResultInvalidCredentials)
		return "", invalidCredentialsError()
	}

	if !s.hasher.Verify(password, account.PasswordHash, account.PasswordSalt) {
		s.metrics.LoginAttempt(ResultInvalidCredentials)
		return "", invalidCredentialsError()
	}

	if s.hasher.NeedsUpgrade(account.PasswordHash, account.PasswordSalt) {
		s.upgradeCredentials(ctx, account, password)
	}

	token, err := s.tokens.Create(account)
	if err != nil {
		s.metrics.LoginAttempt(ResultError)
		return "", oops.Code(CodeTokenIssue).
			With("operation", "create token").
			With("account_id", account.ID.String()).
			Wrap(err)
	}

	s.metrics.LoginAttempt(ResultSuccess)
	return token, nil
}

// upgradeCredentials re-hashes a legacy credential. Failures are logged and
// never fail the login.
func (s *Service) upgradeCredentials(ctx context.Context, account *Account, password string) {
	hash, salt, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.WarnContext(ctx, "best-effort credential upgrade failed",
			"operation", "rehash_password",
			"account_id", account.ID.String(),
			"error", err.Error())
		return
	}
	if err := s.accounts.UpdateCredentials(ctx, account.ID, hash, salt); err != nil {
		s.logger.WarnContext(ctx, "best-effort credential upgrade failed",
			"operation", "update_credentials",
			"account_id", account.ID.String(),
			"error", err.Error())
		return
	}
	account.PasswordHash = hash
	account.PasswordSalt = salt
	s.logger.InfoContext(ctx, "credential upgraded", "account_id", account.ID.String())
}

// Logout revokes a well-formed token. The token need not be current; it only
// has to identify a subject. The revocation lasts RevocationHorizon from now
// or until the token's own expiry, whichever is later.
func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracer.Start(ctx, "auth.logout")
	defer func() { endSpan(span, err) }()

	identity, err := s.tokens.Validate(token)
	if err != nil {
		return oops.Code(CodeInvalidToken).Wrapf(err, "invalid token")
	}
	span.SetAttributes(attribute.String("auth.account_id", identity.AccountID.String()))

	expiresAt := s.clock().Add(RevocationHorizon)
	if identity.ExpiresAt.After(expiresAt) {
		expiresAt = identity.ExpiresAt
	}

	if err := s.ledger.Add(ctx, token, expiresAt); err != nil {
		return persistenceError("revoke token", err)
	}

	s.metrics.TokenRevoked()
	s.logger.DebugContext(ctx, "token revoked",
		"account_id", identity.AccountID.String(),
		"token_id", identity.TokenID,
		"revoked_until", expiresAt)
	return nil
}

// Authorize returns the identity carried by token if the token is well-formed,
// not revoked and not expired. Revocation is checked before natural expiry.
func (s *Service) Authorize(ctx context.Context, token string) (_ *Identity, err error) {
	ctx, span := tracer.Start(ctx, "auth.authorize")
	defer func() { endSpan(span, err) }()

	identity, err := s.tokens.Validate(token)
	if err != nil {
		return nil, oops.Code(CodeInvalidToken).Wrapf(err, "invalid token")
	}

	revoked, err := s.ledger.Contains(ctx, token)
	if err != nil {
		return nil, persistenceError("check revocation", err)
	}
	if revoked {
		return nil, oops.Code(CodeTokenRevoked).
			With("token_id", identity.TokenID).
			Errorf("token has been revoked")
	}

	if identity.IsExpiredAt(s.clock()) {
		return nil, oops.Code(CodeTokenExpired).
			With("token_id", identity.TokenID).
			With("expired_at", identity.ExpiresAt).
			Errorf("token has expired")
	}

	return identity, nil
}

// UserExists reports whether an account with the username exists.
func (s *Service) UserExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.accounts.ExistsByUsername(ctx, username)
	if err != nil {
		return false, persistenceError("check username", err)
	}
	return exists, nil
}

// GetByUsername returns the account for username. The returned error wraps
// ErrNotFound when no such account exists.
//
// The Account carries credential material; callers outside this package must
// expose it only through Account.Profile or JSON encoding.
func (s *Service) GetByUsername(ctx context.Context, username string) (*Account, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code(CodeAccountNotFound).
				With("username", username).
				Wrap(err)
		}
		return nil, persistenceError("get account by username", err)
	}
	return account, nil
}

func invalidCredentialsError() error {
	return oops.Code(CodeInvalidCredentials).Errorf("invalid username or password")
}

func duplicateUsernameError(username string, cause error) error {
	b := oops.Code(CodeDuplicateUsername).With("username", username)
	if cause != nil {
		return b.Wrapf(cause, "username already taken")
	}
	return b.Errorf("username already taken")
}

func persistenceError(operation string, err error) error {
	return oops.Code(CodePersistence).
		With("operation", operation).
		Wrap(err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
