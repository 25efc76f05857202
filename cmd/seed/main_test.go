package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/account-core/config"
	"github.com/oksasatya/account-core/internal/domain/entity"
	"github.com/oksasatya/account-core/internal/infrastructure/memory"
	"github.com/oksasatya/account-core/pkg/helpers"
)

func TestRun_RejectsBadInput(t *testing.T) {
	cfg := &config.Config{}
	cases := map[string]struct {
		name, email, password, role string
		want                        string
	}{
		"no name":        {"", "a@x.io", "secret1", "admin", "name is required"},
		"no email":       {"Admin", "  ", "secret1", "admin", "email is required"},
		"short password": {"Admin", "a@x.io", "123", "admin", "password must be at least 6 characters"},
		"unknown role":   {"Admin", "a@x.io", "secret1", "root", `unknown role "root"`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := run(cfg, tc.name, tc.email, tc.password, tc.role)
			assert.EqualError(t, err, tc.want)
		})
	}
}

// recordingStore notes whether the schema was migrated before the insert.
type recordingStore struct {
	*memory.AccountRepository
	migrated        bool
	createdMigrated bool
}

func (r *recordingStore) Create(ctx context.Context, a *entity.Account) error {
	r.createdMigrated = r.migrated
	return r.AccountRepository.Create(ctx, a)
}

func TestSeed_MigratesBeforeInsert(t *testing.T) {
	store := &recordingStore{AccountRepository: memory.NewAccountRepository()}
	s := seeder{
		migrate:  func() error { store.migrated = true; return nil },
		accounts: store,
		hasher:   helpers.NewBcryptHasher(bcrypt.MinCost),
	}

	a, err := s.seed(context.Background(), " Root ", "Root@X.io", "secret1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, store.createdMigrated)
	assert.Equal(t, "Root", a.Name)
	assert.Equal(t, "root@x.io", a.Email)
	assert.Equal(t, entity.RoleAdmin, a.Role)

	_, err = s.seed(context.Background(), "Root", "root@x.io", "secret1", entity.RoleAdmin)
	assert.EqualError(t, err, "an account with email root@x.io already exists")
}

func TestSeed_MigrationFailureSkipsInsert(t *testing.T) {
	store := &recordingStore{AccountRepository: memory.NewAccountRepository()}
	s := seeder{
		migrate:  func() error { return errors.New("dirty database version 1") },
		accounts: store,
		hasher:   helpers.NewBcryptHasher(bcrypt.MinCost),
	}

	_, err := s.seed(context.Background(), "Root", "root@x.io", "secret1", entity.RoleAdmin)
	assert.ErrorContains(t, err, "migrate: dirty database version 1")
	_, err = store.GetByEmail(context.Background(), "root@x.io")
	assert.Error(t, err)
}
