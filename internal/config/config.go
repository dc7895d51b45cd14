// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

// Package config loads authcore settings from defaults, a YAML file, the
// DATABASE_URL environment variable and command-line flags, in that order of
// increasing precedence.
package config

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
	"github.com/mkwkamil/LoginComponentBackend/internal/auth/jwt"
	"github.com/mkwkamil/LoginComponentBackend/internal/logging"
	"github.com/mkwkamil/LoginComponentBackend/internal/store"
)

// DatabaseURLEnv names the environment variable holding the DSN.
const DatabaseURLEnv = "DATABASE_URL"

// Config is the full authcore configuration.
type Config struct {
	Database   Database   `koanf:"database" json:"database,omitempty"`
	JWT        JWT        `koanf:"jwt" json:"jwt,omitempty"`
	Revocation Revocation `koanf:"revocation" json:"revocation,omitempty"`
	Metrics    Metrics    `koanf:"metrics" json:"metrics,omitempty"`
	Log        Log        `koanf:"log" json:"log,omitempty"`
}

// Database configures the PostgreSQL connection.
type Database struct {
	URL            string        `koanf:"url" json:"url,omitempty" jsonschema:"description=PostgreSQL connection URL"`
	MaxConns       int32         `koanf:"max_conns" json:"max_conns,omitempty"`
	MinConns       int32         `koanf:"min_conns" json:"min_conns,omitempty"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" json:"connect_timeout,omitempty"`
	ConnectRetries uint64        `koanf:"connect_retries" json:"connect_retries,omitempty"`
}

// JWT configures token issuance.
type JWT struct {
	Secret string        `koanf:"secret" json:"secret,omitempty" jsonschema:"description=HMAC secret for signing tokens"`
	Issuer string        `koanf:"issuer" json:"issuer,omitempty"`
	TTL    time.Duration `koanf:"ttl" json:"ttl,omitempty" jsonschema:"description=Token lifetime"`
}

// Revocation configures the ledger cache and background purge.
type Revocation struct {
	PurgeInterval   time.Duration `koanf:"purge_interval" json:"purge_interval,omitempty" jsonschema:"description=Interval between revocation purges"`
	CacheLifeWindow time.Duration `koanf:"cache_life_window" json:"cache_life_window,omitempty" jsonschema:"description=How long revocations stay cached in memory (0 disables the cache)"`
}

// Metrics configures the metrics and health HTTP server.
type Metrics struct {
	Addr string `koanf:"addr" json:"addr,omitempty" jsonschema:"description=Metrics and health HTTP address (empty disables the server)"`
}

// Log configures structured logging.
type Log struct {
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=text"`
	Level  string `koanf:"level" json:"level,omitempty"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	pool := store.DefaultPoolConfig()
	return Config{
		Database: Database{
			MaxConns:       pool.MaxConns,
			MinConns:       pool.MinConns,
			ConnectTimeout: pool.ConnectTimeout,
			ConnectRetries: pool.ConnectRetries,
		},
		JWT: JWT{
			Issuer: jwt.DefaultIssuer,
			TTL:    jwt.DefaultTTL,
		},
		Revocation: Revocation{
			PurgeInterval: auth.DefaultPurgeInterval,
		},
		Metrics: Metrics{Addr: "127.0.0.1:9100"},
		Log:     Log{Format: "json", Level: "info"},
	}
}

// flagKeys maps command-line flag names to configuration keys. Flags not
// listed here are not configuration.
var flagKeys = map[string]string{
	"database-url":      "database.url",
	"jwt-secret":        "jwt.secret",
	"jwt-issuer":        "jwt.issuer",
	"jwt-ttl":           "jwt.ttl",
	"purge-interval":    "revocation.purge_interval",
	"cache-life-window": "revocation.cache_life_window",
	"metrics-addr":      "metrics.addr",
	"log-format":        "log.format",
	"log-level":         "log.level",
}

// Load builds a Config. path may be empty to skip the file; flags may be nil.
// Unchanged flags only fill keys no earlier source provided.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").
				With("path", path).
				Wrap(err)
		}
		if err := ValidateDocument(k.Raw()); err != nil {
			return nil, oops.Code("CONFIG_INVALID").
				With("path", path).
				Errorf("%s", FormatSchemaError(err))
		}
	}

	if dsn := os.Getenv(DatabaseURLEnv); dsn != "" {
		if err := k.Set("database.url", dsn); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("source", DatabaseURLEnv).Wrap(err)
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("source", "flags").Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_INVALID").With("operation", "decode configuration").Wrap(err)
	}
	return &cfg, nil
}

// Validate checks settings every command relies on.
func (c *Config) Validate() error {
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return oops.Code("CONFIG_INVALID").
			With("key", "log.format").
			Errorf("log format must be 'json' or 'text', got %q", c.Log.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return oops.Code("CONFIG_INVALID").
			With("key", "log.level").
			Errorf("log level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Database.MaxConns < 0 || c.Database.MinConns < 0 {
		return oops.Code("CONFIG_INVALID").
			With("key", "database.max_conns").
			Errorf("connection limits must be non-negative")
	}
	if c.Revocation.PurgeInterval <= 0 {
		return oops.Code("CONFIG_INVALID").
			With("key", "revocation.purge_interval").
			Errorf("purge interval must be positive, got %s", c.Revocation.PurgeInterval)
	}
	if c.Revocation.CacheLifeWindow < 0 {
		return oops.Code("CONFIG_INVALID").
			With("key", "revocation.cache_life_window").
			Errorf("cache life window must not be negative")
	}
	return nil
}

// RequireDatabase checks that a DSN is configured.
func (c *Config) RequireDatabase() error {
	if c.Database.URL == "" {
		return oops.Code("CONFIG_INVALID").
			With("key", "database.url").
			Errorf("database url is required (set %s, --database-url or database.url)", DatabaseURLEnv)
	}
	return nil
}

// RequireJWT checks that tokens can be issued and validated.
func (c *Config) RequireJWT() error {
	if len(c.JWT.Secret) < jwt.MinSecretLength {
		return oops.Code("CONFIG_INVALID").
			With("key", "jwt.secret").
			Errorf("jwt secret must be at least %d bytes", jwt.MinSecretLength)
	}
	if c.JWT.TTL <= 0 {
		return oops.Code("CONFIG_INVALID").
			With("key", "jwt.ttl").
			Errorf("jwt ttl must be positive, got %s", c.JWT.TTL)
	}
	return nil
}

// PoolConfig converts the database settings for store.NewPool.
func (c *Config) PoolConfig() store.PoolConfig {
	pool := store.DefaultPoolConfig()
	pool.MaxConns = c.Database.MaxConns
	pool.MinConns = c.Database.MinConns
	pool.ConnectTimeout = c.Database.ConnectTimeout
	pool.ConnectRetries = c.Database.ConnectRetries
	return pool
}

// IssuerConfig converts the JWT settings for jwt.NewIssuer.
func (c *Config) IssuerConfig() jwt.Config {
	return jwt.Config{
		Secret: []byte(c.JWT.Secret),
		Issuer: c.JWT.Issuer,
		TTL:    c.JWT.TTL,
	}
}

// RegisterFlags adds the configuration flags to fs with defaults from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("database-url", "", "PostgreSQL connection URL (default: $"+DatabaseURLEnv+")")
	fs.String("jwt-secret", "", "HMAC secret for signing tokens")
	fs.String("jwt-issuer", d.JWT.Issuer, "token issuer claim")
	fs.Duration("jwt-ttl", d.JWT.TTL, "token lifetime")
	fs.Duration("purge-interval", d.Revocation.PurgeInterval, "interval between revocation purges")
	fs.Duration("cache-life-window", 0, "cache revocations in memory for this long (0 = disabled)")
	fs.String("metrics-addr", d.Metrics.Addr, "metrics/health HTTP address (empty = disabled)")
	fs.String("log-format", d.Log.Format, "log format (json or text)")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
}
