package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/account-core/internal/domain/entity"
	"github.com/oksasatya/account-core/internal/domain/repository"
)

func newAccount(email string) *entity.Account {
	return &entity.Account{Name: "Ann", Email: email, PasswordHash: "hash", Role: entity.RoleUser}
}

func TestCreateAndGet(t *testing.T) {
	r := NewAccountRepository()
	ctx := context.Background()

	a := newAccount("a@x.com")
	require.NoError(t, r.Create(ctx, a))
	require.NotEmpty(t, a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	byEmail, err := r.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, *a, *byEmail)

	p, err := r.GetProfileByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Profile{Name: "Ann", Email: "a@x.com", Role: entity.RoleUser}, p)

	_, err = r.GetProfileByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreate_Duplicate(t *testing.T) {
	r := NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newAccount("a@x.com")))
	assert.ErrorIs(t, r.Create(ctx, newAccount("a@x.com")), repository.ErrDuplicateEmail)
}

func TestReturnedAccountsAreCopies(t *testing.T) {
	r := NewAccountRepository()
	ctx := context.Background()

	a := newAccount("a@x.com")
	require.NoError(t, r.Create(ctx, a))
	a.Role = entity.RoleAdmin

	got, err := r.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, got.Role)

	got.PasswordHash = "tampered"
	again, _ := r.GetByEmail(ctx, "a@x.com")
	assert.Equal(t, "hash", again.PasswordHash)
}

func TestUpdate(t *testing.T) {
	r := NewAccountRepository()
	ctx := context.Background()

	a := newAccount("a@x.com")
	require.NoError(t, r.Create(ctx, a))
	b := newAccount("b@x.com")
	require.NoError(t, r.Create(ctx, b))

	t.Run("keeps hash when nil", func(t *testing.T) {
		p, err := r.Update(ctx, a.ID, repository.AccountUpdate{Name: "Ann B", Email: "c@x.com"})
		require.NoError(t, err)
		assert.Equal(t, entity.Profile{Name: "Ann B", Email: "c@x.com", Role: entity.RoleUser}, p)

		got, err := r.GetByEmail(ctx, "c@x.com")
		require.NoError(t, err)
		assert.Equal(t, "hash", got.PasswordHash)

		_, err = r.GetByEmail(ctx, "a@x.com")
		assert.ErrorIs(t, err, repository.ErrNotFound, "old email released")
	})

	t.Run("replaces hash", func(t *testing.T) {
		h := "new-hash"
		_, err := r.Update(ctx, a.ID, repository.AccountUpdate{Name: "Ann", Email: "c@x.com", PasswordHash: &h})
		require.NoError(t, err)
		got, err := r.GetByEmail(ctx, "c@x.com")
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.PasswordHash)
	})

	t.Run("conflict", func(t *testing.T) {
		_, err := r.Update(ctx, a.ID, repository.AccountUpdate{Name: "Ann", Email: "b@x.com"})
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := r.Update(ctx, "missing", repository.AccountUpdate{Name: "x", Email: "x@x.com"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCreate_ConcurrentSameEmail(t *testing.T) {
	r := NewAccountRepository()
	ctx := context.Background()

	const n = 32
	var ok, dup atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a := newAccount("race@x.com")
			a.Name = fmt.Sprintf("racer-%d", i)
			switch err := r.Create(ctx, a); err {
			case nil:
				ok.Add(1)
			case repository.ErrDuplicateEmail:
				dup.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(n-1), dup.Load())
}

func TestCanceledContext(t *testing.T) {
	r := NewAccountRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Create(ctx, newAccount("a@x.com")), context.Canceled)
	_, err := r.GetByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, context.Canceled)
}
