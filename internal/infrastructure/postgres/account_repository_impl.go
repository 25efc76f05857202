package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/account-core/internal/domain/entity"
	"github.com/oksasatya/account-core/internal/domain/repository"
)

const (
	codeUniqueViolation = "23505"
	codeInvalidText     = "22P02"
)

// DBTX is the subset of *pgxpool.Pool used by the repository.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

const (
	selectAccount = `SELECT id, name, email, password_hash, role, created_at, updated_at FROM accounts`
	selectProfile = `SELECT name, email, role FROM accounts`
)

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.Name, a.Email, a.PasswordHash, a.Role)

	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

// GetByEmail loads the full account, hash included. Only login and the
// uniqueness check use it.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a := &entity.Account{}
	row := r.db.QueryRow(ctx, selectAccount+` WHERE email = $1`, email)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *AccountRepository) GetProfileByID(ctx context.Context, id string) (entity.Profile, error) {
	return scanProfile(r.db.QueryRow(ctx, selectProfile+` WHERE id = $1`, id))
}

// Update applies upd in a single statement. COALESCE keeps the stored hash
// when upd.PasswordHash is nil.
func (r *AccountRepository) Update(ctx context.Context, id string, upd repository.AccountUpdate) (entity.Profile, error) {
	return scanProfile(r.db.QueryRow(ctx, `
		UPDATE accounts
		SET name = $2, email = $3, password_hash = COALESCE($4, password_hash), updated_at = now()
		WHERE id = $1
		RETURNING name, email, role
	`, id, upd.Name, upd.Email, upd.PasswordHash))
}

func scanProfile(row pgx.Row) (entity.Profile, error) {
	var p entity.Profile
	if err := row.Scan(&p.Name, &p.Email, &p.Role); err != nil {
		return entity.Profile{}, mapError(err)
	}
	return p, nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return repository.ErrDuplicateEmail
		case codeInvalidText:
			// malformed uuid: no such account
			return repository.ErrNotFound
		}
	}
	return fmt.Errorf("db error: %w", err)
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
