package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/account-core/internal/domain/service"
)

// DefaultBcryptCost matches the work factor the accounts were originally hashed with.
const DefaultBcryptCost = 10

var ErrEmptyPassword = errors.New("password must not be empty")

// BcryptHasher implements service.PasswordHasher with bcrypt.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash hashes the plain text password using bcrypt.
// Passwords longer than 72 bytes return service.ErrPasswordTooLong.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	if len(plain) > service.MaxPasswordBytes {
		return "", service.ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check compares a bcrypt hash with a plain password in constant time.
func (h *BcryptHasher) Check(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
