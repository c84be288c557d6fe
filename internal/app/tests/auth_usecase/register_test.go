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

func TestRegister(t *testing.T) {
	ctx := context.Background()

	testName := "John Doe"
	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	avatarURL := "https://www.gravatar.com/avatar/abc?s=200&d=mm&r=pg"
	generatedUserID := "generated-user-id"

	now := time.Now()
	tokenExpires := now.Add(100 * time.Hour)
	identityToken := "identity-token-123"

	createdUser := &entities.User{
		ID:           generatedUserID,
		Name:         testName,
		Email:        testEmail,
		PasswordHash: hashedPassword,
		Avatar:       avatarURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("Успешная регистрация пользователя", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
		mockAvatarSvc.On("AvatarURL", testEmail).Return(avatarURL).Once()
		mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.Name == testName && u.Email == testEmail &&
				u.PasswordHash == hashedPassword && u.Avatar == avatarURL
		})).Return(createdUser, nil).Once()
		mockTokenSvc.On("GenerateToken", mock.Anything, generatedUserID).
			Return(identityToken, tokenExpires, nil).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		token, err := useCase.Register(ctx, testName, testEmail, testPassword)

		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, generatedUserID, token.UserID)
		assert.Equal(t, identityToken, token.Token)
		assert.Equal(t, tokenExpires, token.ExpiresAt)

		mockUserRepo.AssertExpectations(t)
		mockPasswordSvc.AssertExpectations(t)
		mockTokenSvc.AssertExpectations(t)
		mockAvatarSvc.AssertExpectations(t)
	})

	t.Run("Дублирующийся email отклоняется без создания пользователя", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(createdUser, nil).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		token, err := useCase.Register(ctx, testName, testEmail, testPassword)

		assert.Nil(t, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)

		mockUserRepo.AssertExpectations(t)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Все нарушения валидации собираются в одну ошибку", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		token, err := useCase.Register(ctx, "", "not-an-email", "123")

		assert.Nil(t, token)
		require.Error(t, err)

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{
			app.ValidationNameRequired,
			app.ValidationEmailInvalid,
			app.ValidationPasswordShort,
		}, validationErr.Messages)

		mockUserRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Ошибка генерации токена прерывает регистрацию", func(t *testing.T) {
		mockUserRepo := new(mockUserRepository)
		mockPasswordSvc := new(mockPasswordService)
		mockTokenSvc := new(mockTokenService)
		mockAvatarSvc := new(mockAvatarService)

		mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
		mockAvatarSvc.On("AvatarURL", testEmail).Return(avatarURL).Once()
		mockUserRepo.On("Create", mock.Anything, mock.Anything).Return(createdUser, nil).Once()
		mockTokenSvc.On("GenerateToken", mock.Anything, generatedUserID).
			Return("", time.Time{}, services.ErrGeneratingJWTToken).Once()

		useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mockAvatarSvc)
		token, err := useCase.Register(ctx, testName, testEmail, testPassword)

		assert.Nil(t, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrTokenGenerationFailed)
	})
}
