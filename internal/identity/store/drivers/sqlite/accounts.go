package sqlite

import (
	"context"

	"github.com/accessly/authd/internal/identity/domain"
	"github.com/accessly/authd/internal/identity/store/drivers/sqlite/gen"
)

type accountsRepo struct {
	q *gen.Queries
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row, err := r.q.GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row), nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row, err := r.q.GetAccountByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row), nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	err := r.q.CreateAccount(ctx, gen.CreateAccountParams{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	})
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *accountsRepo) CountAccounts(ctx context.Context) (int64, error) {
	return r.q.CountAccounts(ctx)
}
