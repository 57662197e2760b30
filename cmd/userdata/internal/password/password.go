// Package password provides salted password hashing and verification
// backed by bcrypt. Artifacts use the standard $2a$ modular crypt encoding
// and interoperate with any conforming bcrypt implementation.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEncoding indicates the hashing primitive rejected the requested
	// cost or input encoding. Not expected with the default configuration.
	ErrEncoding = errors.New("password hash encoding failed")

	// ErrMalformedHash indicates a stored artifact could not be parsed as a
	// bcrypt hash. It is distinct from a plain mismatch so callers can tell
	// corrupt data apart from a wrong password.
	ErrMalformedHash = errors.New("malformed password hash")
)

const (
	// DefaultCost is the bcrypt work factor used by Hash. It tracks the
	// library default, which is sized for interactive login.
	DefaultCost = bcrypt.DefaultCost

	// MaxPasswordBytes is the number of password bytes that contribute to
	// the hash. bcrypt only keys on the first 72 bytes; longer inputs are
	// accepted but truncated to this limit before hashing.
	MaxPasswordBytes = 72
)

// Hash returns a salted bcrypt artifact for plaintext using DefaultCost.
// Each call draws a fresh random salt, so hashing the same plaintext twice
// yields different artifacts; compare only through Verify.
func Hash(plaintext string) (string, error) {
	return HashWithCost(plaintext, DefaultCost)
}

// HashWithCost is Hash with an explicit bcrypt cost factor.
func HashWithCost(plaintext string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return string(hashed), nil
}

// Verify reports whether candidate matches the stored artifact. The salt and
// cost embedded in the artifact drive the re-derivation, and the underlying
// comparison is constant-time.
//
// A wrong password returns (false, nil). An artifact that cannot be parsed
// returns ErrMalformedHash.
func Verify(artifact, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(artifact), truncate(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// truncate applies the bcrypt input limit. Candidates and plaintexts are cut
// at the same boundary so Hash and Verify agree on long inputs.
func truncate(s string) []byte {
	b := []byte(s)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
