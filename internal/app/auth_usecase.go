// Package app реализует бизнес-логику сервиса devconnect.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"devconnect/internal/domain/entities"
	"devconnect/internal/domain/services"
	"devconnect/internal/ports/api"
	"devconnect/internal/ports/repositories"
	svc "devconnect/internal/ports/services"
	"devconnect/pkg/logger"
)

const (
	methodRegister    = "Register"
	methodLogin       = "Login"
	methodCurrentUser = "CurrentUser"

	msgStartRegistration  = "starting user registration"
	msgInvalidInput       = "invalid registration input"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgTokenIssued        = "identity token issued"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgInvalidPassword    = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgRequestingUser     = "requesting current user"
	msgUserRetrieved      = "current user retrieved"
	msgErrCheckExisting   = "failed to check existing user"
	msgErrHashPassword    = "failed to hash password"
	msgErrCreateUser      = "failed to create user"
	msgErrGenerateToken   = "failed to generate token"
	msgErrFindingUser     = "error finding user by email"
	msgErrVerifyPassword  = "error verifying password"
	msgErrFindingUserByID = "failed to find user by ID"

	errCtxCheckingUser    = "checking existing user"
	errCtxEmailRegistered = "email already registered"
	errCtxHashingPassword = "hashing password"
	errCtxCreatingUser    = "creating user"
	errCtxIssuingToken    = "issuing token"
	errCtxInvalidCreds    = "invalid credentials"
	errCtxFindingUser     = "finding user"
	errCtxVerifyPassword  = "verifying password"
	errCtxFetchingUser    = "fetching current user"
)

// Сообщения валидации при регистрации.
const (
	ValidationNameRequired  = "Name is required"
	ValidationEmailInvalid  = "Please enter a valid email"
	ValidationPasswordShort = "Please enter at least 6 characters for the password"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	avatarSvc   svc.AvatarService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	avatarSvc svc.AvatarService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		avatarSvc:   avatarSvc,
	}
}

// Register создает нового пользователя и выдает токен идентичности.
func (a *AuthUseCaseImpl) Register(ctx context.Context, name, email, password string) (*services.AuthToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if err := validateRegistration(name, email, password); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, err
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExisting, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Avatar:       a.avatarSvc.AvatarURL(email),
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	token, err := a.issueToken(ctx, createdUser)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", createdUser.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgTokenIssued, zap.String("userID", createdUser.ID))
	return token, nil
}

// Login аутентифицирует пользователя по email и паролю.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.AuthToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCreds, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCreds, services.ErrInvalidCredentials)
	}

	token, err := a.issueToken(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return token, nil
}

// CurrentUser возвращает пользователя по идентичности из токена, без хэша пароля.
func (a *AuthUseCaseImpl) CurrentUser(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCurrentUser), zap.String("userID", userID))
	log.Debug(ctx, msgRequestingUser)

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	log.Debug(ctx, msgUserRetrieved)
	return user, nil
}

// Вспомогательная функция для выдачи токена идентичности.
func (a *AuthUseCaseImpl) issueToken(ctx context.Context, user *entities.User) (*services.AuthToken, error) {
	token, expiresAt, err := a.tokenSvc.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, services.ErrTokenGenerationFailed)
	}

	return &services.AuthToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Валидация данных регистрации. Все нарушения собираются в одну ошибку.
func validateRegistration(name, email, password string) error {
	var messages []string

	if name == "" {
		messages = append(messages, ValidationNameRequired)
	}
	if !emailRegex.MatchString(email) {
		messages = append(messages, ValidationEmailInvalid)
	}
	if len(password) < services.MinPasswordLength {
		messages = append(messages, ValidationPasswordShort)
	}

	if len(messages) > 0 {
		return entities.NewValidationError(messages...)
	}
	return nil
}
