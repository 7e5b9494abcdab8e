package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/accessly/authd/internal/identity/domain"
	"github.com/accessly/authd/internal/identity/store"
	"github.com/accessly/authd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL",
		filepath.Join(t.TempDir(), "identity.db"))
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testAccount(email string) domain.Account {
	return domain.Account{
		ID:           idx.New().String(),
		Name:         "Test Account",
		Email:        email,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhash",
	}
}

func TestCreateAndGetAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount("a@x.com")
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	t.Run("by email", func(t *testing.T) {
		got, err := s.Accounts().GetAccountByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.Equal(t, a.Name, got.Name)
		require.Equal(t, a.PasswordHash, got.PasswordHash)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("by id", func(t *testing.T) {
		got, err := s.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, "a@x.com", got.Email)
	})
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Accounts().GetAccountByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Accounts().GetAccountByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Accounts().CreateAccount(ctx, testAccount("dup@x.com")))

	// Same email, different id: the unique index must reject it and the
	// driver must map the violation to ErrAlreadyExists.
	err := s.Accounts().CreateAccount(ctx, testAccount("dup@x.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	count, err := s.Accounts().CountAccounts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestEmailComparisonIsExact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Accounts().CreateAccount(ctx, testAccount("Case@x.com")))

	// BINARY collation: a different casing is a different email.
	_, err := s.Accounts().GetAccountByEmail(ctx, "case@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
