// Package memory provides a process-local credential store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/account-core/internal/domain/entity"
	"github.com/oksasatya/account-core/internal/domain/repository"
)

// AccountRepository keeps accounts in maps guarded by a single mutex.
// The email index is checked and written under the same lock, which gives
// the store its uniqueness guarantee.
type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Account
	byEmail map[string]string
	now     func() time.Time
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:    make(map[string]*entity.Account),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[a.Email]; taken {
		return repository.ErrDuplicateEmail
	}
	now := r.now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	stored := *a
	r.byID[a.ID] = &stored
	r.byEmail[a.Email] = a.ID
	return nil
}

func (r *AccountRepository) GetProfileByID(ctx context.Context, id string) (entity.Profile, error) {
	if err := ctx.Err(); err != nil {
		return entity.Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return entity.Profile{}, repository.ErrNotFound
	}
	return a.Profile(), nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, upd repository.AccountUpdate) (entity.Profile, error) {
	if err := ctx.Err(); err != nil {
		return entity.Profile{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return entity.Profile{}, repository.ErrNotFound
	}
	if owner, taken := r.byEmail[upd.Email]; taken && owner != id {
		return entity.Profile{}, repository.ErrDuplicateEmail
	}

	delete(r.byEmail, a.Email)
	a.Name = upd.Name
	a.Email = upd.Email
	if upd.PasswordHash != nil {
		a.PasswordHash = *upd.PasswordHash
	}
	a.UpdatedAt = r.now().UTC()
	r.byEmail[a.Email] = id

	return a.Profile(), nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
