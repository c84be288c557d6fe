package bcrypt_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"devconnect/internal/adapters/services"
	domainservices "devconnect/internal/domain/services"
)

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("успешная проверка правильного пароля", func(t *testing.T) {
		service := services.NewBcrypt(bcrypt.MinCost)

		hash, err := service.Hash(ctx, "password123")
		require.NoError(t, err)

		ok, err := service.Verify(ctx, "password123", hash)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("неверный пароль не является ошибкой", func(t *testing.T) {
		service := services.NewBcrypt(bcrypt.MinCost)

		hash, err := service.Hash(ctx, "password123")
		require.NoError(t, err)

		ok, err := service.Verify(ctx, "wrong-password", hash)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ошибка при пустом пароле", func(t *testing.T) {
		service := services.NewBcrypt(bcrypt.MinCost)

		ok, err := service.Verify(ctx, "", "some-hash")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
		assert.False(t, ok)
	})

	t.Run("ошибка при пустом хэше", func(t *testing.T) {
		service := services.NewBcrypt(bcrypt.MinCost)

		ok, err := service.Verify(ctx, "password123", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
		assert.False(t, ok)
	})

	t.Run("ошибка при некорректном хэше", func(t *testing.T) {
		service := services.NewBcrypt(bcrypt.MinCost)

		ok, err := service.Verify(ctx, "password123", "not-a-bcrypt-hash")

		require.Error(t, err)
		assert.False(t, ok)
	})
}
