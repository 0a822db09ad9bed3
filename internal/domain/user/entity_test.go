//go:build unit

package user_test

import (
	"testing"

	"hospedagem-api/internal/domain/user"
	"hospedagem-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Ana Recepção", actual.Name().String())
		assert.Equal(t, "ana.recepcao", actual.Login().String())
		assert.Equal(t, user.RoleFuncionario, actual.Role())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("login is lowercased and trimmed", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithLogin("  Ana.Recepcao ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "ana.recepcao", actual.Login().String())
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"funcionario", "gerente", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(role))
	}

	_, err := user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestValueObjectValidation(t *testing.T) {
	t.Run("login length", func(t *testing.T) {
		_, err := user.NewLogin("ana")
		assert.ErrorIs(t, err, user.ErrInvalidLogin)
	})

	t.Run("password length", func(t *testing.T) {
		_, err := user.NewPassword("curta")
		assert.ErrorIs(t, err, user.ErrInvalidPassword)

		_, err = user.NewPassword("password123")
		assert.NoError(t, err)
	})

	t.Run("credentials", func(t *testing.T) {
		creds, err := user.NewCredentials("ana.recepcao", "password123")
		require.NoError(t, err)
		assert.Equal(t, "ana.recepcao", creds.Login().String())

		_, err = user.NewCredentials("ana.recepcao", "curta")
		assert.ErrorIs(t, err, user.ErrInvalidPassword)
	})
}
