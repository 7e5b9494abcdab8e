package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests use bcrypt.MinCost so the suite doesn't spend its time grinding
// through the production work factor.

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "secret123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 72)},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.True(t, strings.HasPrefix(hash, "$2a$"),
				"hash should be a bcrypt blob")
			require.True(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, first, second, "salt must differ per call")
	require.True(t, VerifyPassword("secret123", first))
	require.True(t, VerifyPassword("secret123", second))
}

func TestHashPasswordClampsCost(t *testing.T) {
	t.Run("below minimum falls back to default", func(t *testing.T) {
		hash, err := HashPassword("secret123", 0)
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		require.Equal(t, DefaultCost, cost)
	})

	t.Run("negative cost falls back to default", func(t *testing.T) {
		hash, err := HashPassword("secret123", -3)
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		require.Equal(t, DefaultCost, cost)
	})
}

func TestHashPasswordRejectsOverlongInput(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1), bcrypt.MinCost)
	require.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("correct password matches", func(t *testing.T) {
		require.True(t, VerifyPassword("secret123", hash))
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		require.False(t, VerifyPassword("secret124", hash))
	})

	t.Run("empty password does not match", func(t *testing.T) {
		require.False(t, VerifyPassword("", hash))
	})

	t.Run("garbage blob does not match", func(t *testing.T) {
		require.False(t, VerifyPassword("secret123", "not-a-bcrypt-hash"))
	})

	t.Run("empty blob does not match", func(t *testing.T) {
		require.False(t, VerifyPassword("secret123", ""))
	})
}
