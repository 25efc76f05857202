package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/account-core/internal/domain/entity"
	repo "github.com/oksasatya/account-core/internal/domain/repository"
	"github.com/oksasatya/account-core/internal/domain/service"
)

// EventPublisher delivers account events to downstream consumers.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type Service struct {
	Repo   repo.AccountRepository
	Hasher service.PasswordHasher
	Tokens service.TokenIssuer
	Events EventPublisher
	Logger *logrus.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewService wires the account service. events may be nil.
func NewService(r repo.AccountRepository, hasher service.PasswordHasher, tokens service.TokenIssuer, events EventPublisher, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Service{Repo: r, Hasher: hasher, Tokens: tokens, Events: events, Logger: logger}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	AccountID string
	Token     string
	ExpiresAt time.Time
}

type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string // empty keeps the current password
}

// Signup creates an account with the default role. No token is issued.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*entity.Account, error) {
	name := strings.TrimSpace(in.Name)
	email := entity.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, ErrValidation
	}

	_, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrConflict
	case !errors.Is(err, repo.ErrNotFound):
		return nil, s.internal("signup lookup", err, logrus.Fields{})
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			return nil, ErrValidation
		}
		return nil, s.internal("signup hash", err, logrus.Fields{})
	}

	a := &entity.Account{Name: name, Email: email, PasswordHash: hash, Role: entity.RoleUser}
	if err := s.Repo.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrConflict
		}
		return nil, s.internal("signup create", err, logrus.Fields{})
	}

	s.Logger.WithField("account_id", a.ID).Info("account created")
	s.publish(ctx, entity.AccountEvent{Type: entity.EventAccountCreated, AccountID: a.ID, Name: a.Name, Email: a.Email})
	return a, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	a, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// spend the same hashing time as a real check
			s.Hasher.Check(s.fallbackHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, s.internal("login lookup", err, logrus.Fields{})
	}
	if !s.Hasher.Check(a.PasswordHash, password) {
		s.Logger.WithField("account_id", a.ID).Debug("login rejected")
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(a.ID)
	if err != nil {
		return nil, s.internal("login issue token", err, logrus.Fields{"account_id": a.ID})
	}
	return &LoginResult{AccountID: a.ID, Token: token, ExpiresAt: exp}, nil
}

// GetProfile loads the account resolved by the auth gate.
func (s *Service) GetProfile(ctx context.Context, accountID string) (entity.Profile, error) {
	if accountID == "" {
		return entity.Profile{}, ErrUnauthorized
	}
	p, err := s.Repo.GetProfileByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.Profile{}, ErrNotFound
		}
		return entity.Profile{}, s.internal("get profile", err, logrus.Fields{"account_id": accountID})
	}
	return p, nil
}

// UpdateProfile replaces name and email and, when in.Password is set, the password hash.
// The role is never touched.
func (s *Service) UpdateProfile(ctx context.Context, accountID string, in UpdateProfileInput) (entity.Profile, error) {
	if accountID == "" {
		return entity.Profile{}, ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	email := entity.NormalizeEmail(in.Email)
	if name == "" || email == "" {
		return entity.Profile{}, ErrValidation
	}

	before, err := s.Repo.GetProfileByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.Profile{}, ErrNotFound
		}
		return entity.Profile{}, s.internal("update load", err, logrus.Fields{"account_id": accountID})
	}

	if email != before.Email {
		owner, err := s.Repo.GetByEmail(ctx, email)
		switch {
		case err == nil && owner.ID != accountID:
			return entity.Profile{}, ErrConflict
		case err != nil && !errors.Is(err, repo.ErrNotFound):
			return entity.Profile{}, s.internal("update lookup", err, logrus.Fields{"account_id": accountID})
		}
	}

	upd := repo.AccountUpdate{Name: name, Email: email}
	if in.Password != "" {
		hash, err := s.Hasher.Hash(in.Password)
		if err != nil {
			if errors.Is(err, service.ErrPasswordTooLong) {
				return entity.Profile{}, ErrValidation
			}
			return entity.Profile{}, s.internal("update hash", err, logrus.Fields{"account_id": accountID})
		}
		upd.PasswordHash = &hash
	}

	after, err := s.Repo.Update(ctx, accountID, upd)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return entity.Profile{}, ErrNotFound
		case errors.Is(err, repo.ErrDuplicateEmail):
			return entity.Profile{}, ErrConflict
		}
		return entity.Profile{}, s.internal("update profile", err, logrus.Fields{"account_id": accountID})
	}

	changes := entity.ProfileChanges(before, after, upd.PasswordHash != nil)
	s.Logger.WithFields(logrus.Fields{"account_id": accountID, "changes": changes}).Info("profile updated")
	if len(changes) > 0 {
		ev := entity.AccountEvent{
			Type:      entity.EventProfileUpdated,
			AccountID: accountID,
			Name:      after.Name,
			Email:     after.Email,
			Changes:   changes,
		}
		if before.Name != after.Name {
			ev.PreviousName = before.Name
		}
		if before.Email != after.Email {
			ev.PreviousEmail = before.Email
		}
		s.publish(ctx, ev)
	}
	return after, nil
}

func (s *Service) internal(op string, err error, fields logrus.Fields) error {
	s.Logger.WithError(err).WithFields(fields).Error(op + " failed")
	return fmt.Errorf("%w: %s", ErrInternal, op)
}

func (s *Service) fallbackHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash(uuid.NewString())
	})
	return s.dummyHash
}

// publish is best effort: the account write has already succeeded.
func (s *Service) publish(ctx context.Context, ev entity.AccountEvent) {
	if s.Events == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.OccurredAt = time.Now().UTC()

	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := s.Events.PublishJSON(c, ev); err != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"account_id": ev.AccountID, "event": ev.Type}).Warn("publish account event failed")
	}
}
