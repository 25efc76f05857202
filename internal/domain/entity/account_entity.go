package entity

import (
	"strings"
	"time"
)

// Account is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash with its salt embedded and is never serialized.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string `json:"-"`
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public projection of an Account.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *Account) Profile() Profile {
	return Profile{Name: a.Name, Email: a.Email, Role: a.Role}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Every lookup and write goes through it, so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
