package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/account-core/internal/domain/entity"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountUpdate is the set of mutable fields applied by Update.
// A nil PasswordHash leaves the stored hash untouched.
type AccountUpdate struct {
	Name         string
	Email        string
	PasswordHash *string
}

// AccountRepository persists accounts. Implementations must enforce email
// uniqueness themselves and report a collision as ErrDuplicateEmail.
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	// GetProfileByID reads only the public columns; the hash is never loaded.
	GetProfileByID(ctx context.Context, id string) (entity.Profile, error)
	// Update applies upd and returns the resulting public projection.
	Update(ctx context.Context, id string, upd AccountUpdate) (entity.Profile, error)
}
