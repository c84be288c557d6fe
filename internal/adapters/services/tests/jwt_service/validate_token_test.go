package jwt_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/adapters/services"
	domainservices "devconnect/internal/domain/services"
	"devconnect/pkg/logger"
)

//nolint:gosec
const (
	msgNoErrorValidatingToken    = "should validate token without errors"
	msgCorrectUserIDReturned     = "should return correct user ID"
	msgExpiredTokenReturnsError  = "expired token should return error"
	msgInvalidTokenReturnedError = "invalid token should return error"
)

func TestValidateToken(t *testing.T) {
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err, msgErrorCreatingTestLogger)

	ctx := context.Background()
	ctx = logger.NewContext(ctx, testLogger)

	t.Run("успешная проверка валидного токена", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		userID := "test-user-id-123"

		service := services.NewJWT(secretKey, 100*time.Hour)

		token, _, err := service.GenerateToken(ctx, userID)
		require.NoError(t, err, msgNoErrorGeneratingToken)
		assert.NotEmpty(t, token, msgTokenNotEmpty)

		resultUserID, err := service.ValidateToken(ctx, token)
		require.NoError(t, err, msgNoErrorValidatingToken)
		assert.Equal(t, userID, resultUserID, msgCorrectUserIDReturned)
	})

	t.Run("ошибка на просроченном токене", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		userID := "test-user-id-123"

		service := services.NewJWT(secretKey, -15*time.Minute)

		token, _, err := service.GenerateToken(ctx, userID)
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = service.ValidateToken(ctx, token)
		require.Error(t, err, msgExpiredTokenReturnsError)
		assert.ErrorIs(t, err, domainservices.ErrExpiredJWTToken)
	})

	t.Run("ошибка на токене неверного формата", func(t *testing.T) {
		service := services.NewJWT("test-secret-key-12345", time.Hour)

		_, err := service.ValidateToken(ctx, "not-a-jwt-token")
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("ошибка на токене с чужой подписью", func(t *testing.T) {
		userID := "test-user-id-123"

		issuer := services.NewJWT("issuer-secret-key", time.Hour)
		validator := services.NewJWT("validator-secret-key", time.Hour)

		token, _, err := issuer.GenerateToken(ctx, userID)
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = validator.ValidateToken(ctx, token)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("ошибка на токене с алгоритмом none", func(t *testing.T) {
		service := services.NewJWT("test-secret-key-12345", time.Hour)

		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, services.Claims{
			UserID: "test-user-id-123",
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(ctx, token)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("ошибка на токене без идентификатора пользователя", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		service := services.NewJWT(secretKey, time.Hour)

		empty := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		token, err := empty.SignedString([]byte(secretKey))
		require.NoError(t, err)

		_, err = service.ValidateToken(ctx, token)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})
}
