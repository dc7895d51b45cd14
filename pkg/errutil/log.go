// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package errutil

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/oops"
)

// Redacted replaces the value of any sensitive context key.
const Redacted = "[REDACTED]"

// sensitiveKeys are substrings of context keys whose values never reach logs.
var sensitiveKeys = []string{"password", "hash", "salt", "token", "secret"}

// tokenIDKeys are allowed through even though they contain "token".
var tokenIDKeys = map[string]bool{"token_id": true}

// IsSensitiveKey reports whether a context key names credential material.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if tokenIDKeys[k] {
		return false
	}
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}

// Redact returns a copy of ctx with sensitive values replaced by Redacted.
func Redact(ctx map[string]any) map[string]any {
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		if IsSensitiveKey(k) {
			out[k] = Redacted
			continue
		}
		out[k] = v
	}
	return out
}

// Code returns the oops code carried by err, or "" for other errors.
func Code(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code, _ := oopsErr.Code().(string)
	return code
}

// LogError logs an error with structured context if it's an oops error.
// For oops errors, it extracts and logs the message, code and redacted context.
// For standard errors, it logs the error string.
func LogError(logger *slog.Logger, msg string, err error) {
	LogErrorContext(context.Background(), logger, msg, err)
}

// LogErrorContext is LogError with a context for trace correlation.
func LogErrorContext(ctx context.Context, logger *slog.Logger, msg string, err error) {
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{
			"error", oopsErr.Error(),
		}
		if code := oopsErr.Code(); code != nil && code != "" {
			attrs = append(attrs, "code", code)
		}
		if errCtx := oopsErr.Context(); len(errCtx) > 0 {
			attrs = append(attrs, "context", Redact(errCtx))
		}
		logger.ErrorContext(ctx, msg, attrs...)
	} else {
		logger.ErrorContext(ctx, msg, "error", err)
	}
}
