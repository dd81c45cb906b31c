// Package cryptox wraps a one-way digest primitive into the password hasher
// used by the auth service.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Supported digest algorithm names, as used in configuration.
const (
	AlgorithmSHA256   = "sha256"
	AlgorithmArgon2id = "argon2id"
)

// argon2id cost parameters.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// ErrHashFailure is returned when the underlying digest primitive is
// unavailable or fails.
var ErrHashFailure = errors.New("HASH_FAILURE: failed to hash password")

// DigestFunc is a deterministic one-way function over its input.
type DigestFunc func(input []byte) ([]byte, error)

// SHA256Digest computes a plain SHA-256 digest.
func SHA256Digest(input []byte) ([]byte, error) {
	sum := sha256.Sum256(input)
	return sum[:], nil
}

// Argon2Digest returns an argon2id DigestFunc keyed by a fixed installation
// pepper. The pepper takes the place of a per-user salt, so equal passwords
// still produce equal digests.
func Argon2Digest(pepper []byte) DigestFunc {
	return func(input []byte) ([]byte, error) {
		if len(pepper) == 0 {
			return nil, errors.New("argon2id: empty pepper")
		}
		return argon2.IDKey(input, pepper, argon2Time, argon2Memory, argon2Threads, argon2KeyLen), nil
	}
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	// Hash returns the hex digest of password, or an error wrapping
	// ErrHashFailure.
	Hash(password string) (string, error)

	// Verify reports whether password hashes to digest. Failures of the
	// primitive are reported as a mismatch.
	Verify(password, digest string) bool
}

// DigestHasher implements Hasher over a DigestFunc.
type DigestHasher struct {
	digest DigestFunc
}

// NewHasher returns a Hasher backed by digest.
func NewHasher(digest DigestFunc) *DigestHasher {
	return &DigestHasher{digest: digest}
}

// NewHasherForAlgorithm picks the digest primitive by its configured name.
func NewHasherForAlgorithm(algorithm string, pepper []byte) (*DigestHasher, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", AlgorithmSHA256:
		return NewHasher(SHA256Digest), nil
	case AlgorithmArgon2id:
		if len(pepper) == 0 {
			return nil, fmt.Errorf("hash algorithm %s requires a pepper", AlgorithmArgon2id)
		}
		return NewHasher(Argon2Digest(pepper)), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", algorithm)
	}
}

func (h *DigestHasher) Hash(password string) (string, error) {
	if h.digest == nil {
		return "", ErrHashFailure
	}
	sum, err := h.digest([]byte(password))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashFailure, err)
	}
	return hex.EncodeToString(sum), nil
}

func (h *DigestHasher) Verify(password, digest string) bool {
	candidate, err := h.Hash(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
