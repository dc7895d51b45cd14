// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

// Package jwt implements auth.TokenIssuer with HS256-signed JSON Web Tokens.
package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
)

// Issuer defaults.
const (
	MinSecretLength = 32
	DefaultTTL      = time.Hour
	DefaultIssuer   = "authcore"
)

// Claims are the registered claims plus the account identifiers.
type Claims struct {
	jwtlib.RegisteredClaims
	AccountID string `json:"aid"`
	Name      string `json:"name,omitempty"`
}

// Config holds issuer settings.
type Config struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Issuer signs and parses HS256 tokens.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithClock overrides the time source used for iat and exp.
func WithClock(clock func() time.Time) Option {
	return func(i *Issuer) {
		i.clock = clock
	}
}

// NewIssuer creates an Issuer. The secret must be at least MinSecretLength
// bytes; empty Issuer and TTL fall back to defaults.
func NewIssuer(cfg Config, opts ...Option) (*Issuer, error) {
	if len(cfg.Secret) < MinSecretLength {
		return nil, oops.Code("JWT_INVALID_CONFIG").
			With("min_length", MinSecretLength).
			Errorf("signing secret must be at least %d bytes", MinSecretLength)
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	i := &Issuer{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Create issues a token for the account with a fresh token ID.
func (i *Issuer) Create(account *auth.Account) (string, error) {
	if account == nil {
		return "", oops.Code(auth.CodeTokenIssue).Errorf("account is required")
	}

	now := i.clock()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   account.Username,
			ID:        ulid.Make().String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			NotBefore: jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(i.ttl)),
		},
		AccountID: account.ID.String(),
		Name:      account.PublicName,
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", oops.Code(auth.CodeTokenIssue).
			With("account_id", account.ID.String()).
			Wrap(err)
	}
	return signed, nil
}

// Validate verifies the signature and structure of token. Time-based claims
// are not enforced so that expired tokens can still be identified and revoked.
func (i *Issuer) Validate(token string) (*auth.Identity, error) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(token, claims,
		func(*jwtlib.Token) (any, error) { return i.secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, oops.Code(auth.CodeInvalidToken).Wrap(err)
	}
	if !parsed.Valid {
		return nil, oops.Code(auth.CodeInvalidToken).Errorf("token is not valid")
	}
	if claims.Issuer != i.issuer {
		return nil, oops.Code(auth.CodeInvalidToken).
			With("issuer", claims.Issuer).
			Errorf("unexpected token issuer")
	}
	if claims.Subject == "" {
		return nil, oops.Code(auth.CodeInvalidToken).Errorf("token has no subject")
	}

	accountID, err := ulid.Parse(claims.AccountID)
	if err != nil {
		return nil, oops.Code(auth.CodeInvalidToken).
			With("claim", "aid").
			Wrap(err)
	}

	identity := &auth.Identity{
		Subject:   claims.Subject,
		AccountID: accountID,
		TokenID:   claims.ID,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// Compile-time interface check.
var _ auth.TokenIssuer = (*Issuer)(nil)
