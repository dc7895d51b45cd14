// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

// Outcome labels reported to Metrics.
const (
	ResultSuccess            = "success"
	ResultInvalidCredentials = "invalid_credentials"
	ResultDuplicate          = "duplicate"
	ResultInvalid            = "invalid"
	ResultError              = "error"
)

// Metrics receives counters for authentication outcomes.
type Metrics interface {
	LoginAttempt(result string)
	Registration(result string)
	TokenRevoked()
	RevocationsPurged(count int64)
}

type noopMetrics struct{}

func (noopMetrics) LoginAttempt(string)     {}
func (noopMetrics) Registration(string)     {}
func (noopMetrics) TokenRevoked()           {}
func (noopMetrics) RevocationsPurged(int64) {}
