// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"

	"github.com/samber/oops"
	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2SaltLen = 32        // salt length in bytes
	argon2KeyLen  = 32        // output length in bytes
)

// Legacy HMAC-SHA512 credential shape: a 128-byte random key stored as the
// salt and the 64-byte MAC of the UTF-8 password stored as the hash.
const (
	hmacSaltLen = 128
	hmacHashLen = sha512.Size
)

// throwawaySalt keys the derivation run for pairs that are not argon2id.
var throwawaySalt = make([]byte, argon2SaltLen)

// deriveKey is the single argon2id derivation every Argon2idHasher call runs.
var deriveKey = func(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// CredentialHasher turns a plaintext password into a verifiable hash and salt
// pair and verifies plaintext passwords against stored pairs.
type CredentialHasher interface {
	// Hash generates a fresh random salt and derives the password hash from
	// it. Every string, including the empty one, is hashable.
	Hash(password string) (hash, salt []byte, err error)

	// Verify reports whether password matches the stored pair. Malformed
	// pairs (wrong lengths) verify as false.
	Verify(password string, hash, salt []byte) bool

	// NeedsUpgrade reports whether the stored pair was produced by an older
	// scheme and should be re-hashed on the next successful login.
	NeedsUpgrade(hash, salt []byte) bool
}

// Argon2idHasher implements CredentialHasher using argon2id. Pairs produced by
// HMACHasher are still verified so legacy accounts can log in and be upgraded.
type Argon2idHasher struct {
	legacy *HMACHasher
}

// NewArgon2idHasher creates a new Argon2idHasher.
func NewArgon2idHasher() *Argon2idHasher {
	return &Argon2idHasher{legacy: NewHMACHasher()}
}

// Hash produces an argon2id hash of the password with a fresh 256-bit salt.
func (h *Argon2idHasher) Hash(password string) ([]byte, []byte, error) {
	salt, err := randomSalt(argon2SaltLen)
	if err != nil {
		return nil, nil, err
	}
	return deriveKey([]byte(password), salt), salt, nil
}

// Verify checks if the password matches the stored hash and salt.
//
// Every call runs exactly one argon2id derivation, whatever the shape of the
// stored pair, so a legacy or malformed pair fails no faster than a current
// one.
func (h *Argon2idHasher) Verify(password string, hash, salt []byte) bool {
	switch {
	case isLegacyPair(hash, salt):
		deriveKey([]byte(password), throwawaySalt)
		return h.legacy.Verify(password, hash, salt)
	case len(hash) != argon2KeyLen || len(salt) != argon2SaltLen:
		deriveKey([]byte(password), throwawaySalt)
		return false
	}

	computed := deriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}

// NeedsUpgrade returns true if the pair has the legacy HMAC-SHA512 shape.
func (h *Argon2idHasher) NeedsUpgrade(hash, salt []byte) bool {
	return isLegacyPair(hash, salt)
}

// HMACHasher implements CredentialHasher with HMAC-SHA512 keyed by a random
// 128-byte salt. It has no work factor and exists for compatibility with
// credential data created by the previous backend.
type HMACHasher struct{}

// NewHMACHasher creates a new HMACHasher.
func NewHMACHasher() *HMACHasher {
	return &HMACHasher{}
}

// Hash produces an HMAC-SHA512 digest of the password keyed by a fresh salt.
func (h *HMACHasher) Hash(password string) ([]byte, []byte, error) {
	salt, err := randomSalt(hmacSaltLen)
	if err != nil {
		return nil, nil, err
	}

	return hmacDigest(password, salt), salt, nil
}

// Verify recomputes the digest keyed by salt and compares in constant time.
func (h *HMACHasher) Verify(password string, hash, salt []byte) bool {
	if !isLegacyPair(hash, salt) {
		return false
	}
	return subtle.ConstantTimeCompare(hmacDigest(password, salt), hash) == 1
}

// NeedsUpgrade always returns false; HMACHasher never upgrades its own output.
func (h *HMACHasher) NeedsUpgrade(_, _ []byte) bool {
	return false
}

func hmacDigest(password string, key []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

func isLegacyPair(hash, salt []byte) bool {
	return len(hash) == hmacHashLen && len(salt) == hmacSaltLen
}

func randomSalt(n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, oops.Code("AUTH_SALT_FAILED").
			With("requested_bytes", n).
			Wrap(err)
	}
	return salt, nil
}
