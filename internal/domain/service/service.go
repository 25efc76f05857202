// Package service declares the stateless primitives the account domain depends on.
package service

import (
	"errors"
	"time"
)

// MaxPasswordBytes is the longest password a hasher accepts, in bytes.
const MaxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password, or ErrPasswordTooLong.
	Hash(password string) (string, error)
	// Check reports whether password matches hash.
	Check(hash, password string) bool
}

// TokenIssuer signs and verifies bearer tokens carrying an account id.
type TokenIssuer interface {
	Issue(accountID string) (token string, expiresAt time.Time, err error)
	Verify(token string) (accountID string, err error)
}
