package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/accessly/authd/internal/identity/domain"
	"github.com/accessly/authd/internal/identity/store"
	"github.com/accessly/authd/pkg/cryptox"
	"github.com/accessly/authd/pkg/idx"
	"github.com/accessly/authd/pkg/slogx"
)

var (
	ErrEmailTaken      = errors.New("email already in use")
	ErrEmailNotFound   = errors.New("email not found")
	ErrInvalidPassword = errors.New("incorrect password")
)

// AccountService owns the registration and login flows. Each invocation is
// an independent, stateless request-response unit; the only shared state is
// the read-only configuration carried on the struct.
type AccountService struct {
	Store      store.Store
	BcryptCost int
	Bounds     PasswordBounds
}

// Register runs the registration flow: shape validation, duplicate check,
// hash, persist. Returns the stored account on success. No partial side
// effects are committed after a failure point; in particular no account is
// saved if hashing failed.
func (s *AccountService) Register(ctx context.Context, creds domain.Credentials) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if err := validateRegistration(creds, s.bounds()); err != nil {
		return domain.Account{}, err
	}

	// Advisory pre-check. Two concurrent registrations for the same email
	// can both pass it; the unique index on email settles the race below.
	_, err := s.Store.Accounts().GetAccountByEmail(ctx, creds.Email)
	if err == nil {
		return domain.Account{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.Account{}, err
	}

	passwordHash, err := cryptox.HashPassword(creds.Password, s.BcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Name:         creds.Name,
		Email:        creds.Email,
		PasswordHash: passwordHash,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		// A lost race on the unique email index is the same domain error
		// as a pre-check hit, not a server fault.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrEmailTaken
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account registered", slog.String("account_id", account.ID))
	return account, nil
}

// Login runs the login flow: shape validation, lookup, password
// verification. Returns the stored account on success. Email-not-found and
// wrong-password are deliberately distinct failures, matching the wire
// contract this service replaces.
func (s *AccountService) Login(ctx context.Context, creds domain.Credentials) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if err := validateLogin(creds, s.bounds()); err != nil {
		return domain.Account{}, err
	}

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrEmailNotFound
		}
		log.Error("failed to look up account", slog.Any("error", err))
		return domain.Account{}, err
	}

	if !cryptox.VerifyPassword(creds.Password, account.PasswordHash) {
		log.Warn("login with incorrect password", slog.String("account_id", account.ID))
		return domain.Account{}, ErrInvalidPassword
	}

	log.Info("account logged in", slog.String("account_id", account.ID))
	return account, nil
}

// GetAccountByID fetches an account by id.
func (s *AccountService) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return s.Store.Accounts().GetAccountByID(ctx, id)
}

func (s *AccountService) bounds() PasswordBounds {
	if s.Bounds.Min <= 0 {
		return DefaultPasswordBounds
	}
	return s.Bounds
}
