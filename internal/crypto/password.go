// Package crypto provides password hashing for the credential service.
//
// Hashing is bcrypt with a per-call random salt: two calls with the same
// password produce different outputs, and verification recomputes using the
// salt embedded in the stored hash. Both functions are pure over their string
// inputs; no I/O.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned by VerifyPassword when the stored hash cannot
// be parsed as a bcrypt hash. This is a configuration-class fault (corrupted
// or foreign data in the password_hash column), never a wrong password.
var ErrMalformedHash = errors.New("malformed password hash")

// bcryptCost is the adaptive work factor, fixed per deployment.
const bcryptCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password for secure storage.
//
// The returned string embeds the bcrypt version, cost, and random salt, so it
// is self-describing for later verification.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
//
// A mismatched password returns (false, nil) — never an error. The only error
// condition is [ErrMalformedHash], when hash is not valid bcrypt output.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
