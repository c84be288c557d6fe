package authusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devconnect/internal/app"
	"devconnect/internal/domain/entities"
	"devconnect/internal/domain/services"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	userID := "existing-user-id"

	storedUser := &entities.User{
		ID:           userID,
		Name:         "John Doe",
		Email:        testEmail,
		PasswordHash: hashedPassword,
	}

	t.Run("Успешный вход пользователя", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		tokenExpires := time.Now().Add(100 * time.Hour)

		mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
		mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
		mockTokenSvc.On("GenerateToken", mock.Anything, userID).
			Return("identity-token-123", tokenExpires, nil).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		token, err := useCase.Login(ctx, testEmail, testPassword)

		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, userID, token.UserID)
		assert.Equal(t, "identity-token-123", token.Token)

		mockUserRepo.AssertExpectations(t)
		mockPasswordSvc.AssertExpectations(t)
		mockTokenSvc.AssertExpectations(t)
	})

	t.Run("Неизвестный email дает ErrInvalidCredentials", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		mockUserRepo.On("FindByEmail", mock.Anything, "missing@example.com").
			Return(nil, entities.ErrUserNotFound).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		token, err := useCase.Login(ctx, "missing@example.com", testPassword)

		assert.Nil(t, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Неверный пароль дает ту же ошибку, что и неизвестный email", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
		mockPasswordSvc.On("Verify", mock.Anything, "wrong-password", hashedPassword).
			Return(false, nil).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		token, err := useCase.Login(ctx, testEmail, "wrong-password")

		assert.Nil(t, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)

		mockTokenSvc.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()

	userID := "existing-user-id"
	storedUser := &entities.User{
		ID:     userID,
		Name:   "John Doe",
		Email:  "test@example.com",
		Avatar: "avatar-url",
	}

	t.Run("Успешное получение текущего пользователя", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		mockUserRepo.On("FindByID", mock.Anything, userID).Return(storedUser, nil).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		user, err := useCase.CurrentUser(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
	})

	t.Run("Несуществующий пользователь дает ErrUserNotFound", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		mockUserRepo.On("FindByID", mock.Anything, "missing-user-id").
			Return(nil, entities.ErrUserNotFound).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		user, err := useCase.CurrentUser(ctx, "missing-user-id")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}
