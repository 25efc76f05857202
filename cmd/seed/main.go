package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/account-core/config"
	"github.com/oksasatya/account-core/internal/domain/entity"
	"github.com/oksasatya/account-core/internal/domain/repository"
	"github.com/oksasatya/account-core/internal/domain/service"
	pginfra "github.com/oksasatya/account-core/internal/infrastructure/postgres"
	"github.com/oksasatya/account-core/pkg/helpers"
)

// seed creates one account with an explicit role. It is the only path that
// can create an admin; the HTTP surface always assigns "user".
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	name := flag.String("name", envOr("SEED_NAME", "Administrator"), "display name")
	email := flag.String("email", os.Getenv("SEED_EMAIL"), "login email")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "plain password (min 6 chars)")
	role := flag.String("role", envOr("SEED_ROLE", entity.RoleAdmin), "account role (user|admin)")
	flag.Parse()

	if err := run(cfg, *name, *email, *password, *role); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func run(cfg *config.Config, name, email, password, role string) error {
	email = entity.NormalizeEmail(email)
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("name is required")
	case email == "":
		return errors.New("email is required")
	case len(password) < 6:
		return errors.New("password must be at least 6 characters")
	case !entity.IsKnownRole(role):
		return fmt.Errorf("unknown role %q", role)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{DSN: cfg.PostgresDSN(), MaxConns: 2})
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	s := seeder{
		migrate:  func() error { return pginfra.RunMigrations(cfg.PostgresDSN(), logger) },
		accounts: pginfra.NewAccountRepository(pool),
		hasher:   helpers.NewBcryptHasher(cfg.BcryptCost),
	}
	a, err := s.seed(ctx, name, email, password, role)
	if err != nil {
		return err
	}
	fmt.Printf("seeded account: id=%s email=%s role=%s\n", a.ID, a.Email, a.Role)
	return nil
}

type seeder struct {
	migrate  func() error
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
}

// seed brings the schema up to date before inserting, so it works on an
// empty database.
func (s seeder) seed(ctx context.Context, name, email, password, role string) (*entity.Account, error) {
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &entity.Account{Name: strings.TrimSpace(name), Email: entity.NormalizeEmail(email), PasswordHash: hash, Role: role}
	if err := s.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("an account with email %s already exists", a.Email)
		}
		return nil, err
	}
	return a, nil
}
