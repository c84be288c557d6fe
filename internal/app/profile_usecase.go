package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/internal/domain/entities"
	"devconnect/internal/ports/api"
	"devconnect/internal/ports/repositories"
	"devconnect/pkg/logger"
)

const (
	methodUpsertProfile    = "Upsert"
	methodGetMe            = "GetMe"
	methodGetByUser        = "GetByUser"
	methodListAll          = "ListAll"
	methodAddExperience    = "AddExperience"
	methodRemoveExperience = "RemoveExperience"
	methodAddEducation     = "AddEducation"
	methodRemoveEducation  = "RemoveEducation"
	methodDeleteAccount    = "DeleteAccount"

	msgUpsertingProfile  = "upserting profile"
	msgProfileUpserted   = "profile upserted"
	msgFetchingProfile   = "fetching profile"
	msgListingProfiles   = "listing all profiles"
	msgAddingExperience  = "adding experience entry"
	msgRemovingEntry     = "removing profile entry"
	msgAddingEducation   = "adding education entry"
	msgDeletingAccount   = "deleting profile and user"
	msgAccountDeleted    = "profile and user deleted"
	msgInvalidEntryInput = "invalid entry input"

	msgErrUpsertProfile = "failed to upsert profile"
	msgErrFetchProfile  = "failed to fetch profile"
	msgErrListProfiles  = "failed to list profiles"
	msgErrMutateEntry   = "failed to mutate profile entry"
	msgErrDeleteAccount = "failed to delete profile and user"

	errCtxUpsertingProfile = "upserting profile"
	errCtxFetchingProfile  = "fetching profile"
	errCtxListingProfiles  = "listing profiles"
	errCtxAddingEntry      = "adding profile entry"
	errCtxRemovingEntry    = "removing profile entry"
	errCtxDeletingAccount  = "deleting account"
)

// Сообщения валидации вложенных записей профиля.
const (
	ValidationTitleRequired        = "Title is required"
	ValidationCompanyRequired      = "Company is required"
	ValidationLocationRequired     = "Location is required"
	ValidationFromRequired         = "From date is required"
	ValidationDescriptionRequired  = "Description is required"
	ValidationSchoolRequired       = "School is required"
	ValidationDegreeRequired       = "Degree is required"
	ValidationFieldOfStudyRequired = "Field of study is required"
)

// ProfileUseCaseImpl реализует интерфейс ProfileUseCase.
type ProfileUseCaseImpl struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileUseCase создает новый экземпляр сервиса профилей.
func NewProfileUseCase(profileRepo repositories.ProfileRepository) api.ProfileUseCase {
	return &ProfileUseCaseImpl{
		profileRepo: profileRepo,
	}
}

// Upsert атомарно создает или частично обновляет профиль пользователя.
// Отсутствующие в patch поля сохраняют прежние значения; пустой patch
// возвращает текущий профиль без изменений.
func (p *ProfileUseCaseImpl) Upsert(ctx context.Context, userID string, patch *entities.ProfilePatch) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpsertProfile), zap.String("userID", userID))
	log.Debug(ctx, msgUpsertingProfile)

	if patch == nil {
		patch = &entities.ProfilePatch{}
	}

	profile, err := p.profileRepo.Upsert(ctx, userID, patch)
	if err != nil {
		log.Error(ctx, msgErrUpsertProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpsertingProfile, err)
	}

	log.Info(ctx, msgProfileUpserted)
	return profile, nil
}

// GetMe возвращает профиль текущего пользователя.
func (p *ProfileUseCaseImpl) GetMe(ctx context.Context, userID string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetMe), zap.String("userID", userID))
	log.Debug(ctx, msgFetchingProfile)

	return p.findProfile(ctx, log, userID)
}

// GetByUser возвращает публичный профиль по ID пользователя.
func (p *ProfileUseCaseImpl) GetByUser(ctx context.Context, userID string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetByUser), zap.String("userID", userID))
	log.Debug(ctx, msgFetchingProfile)

	return p.findProfile(ctx, log, userID)
}

// ListAll возвращает все профили с данными владельцев.
func (p *ProfileUseCaseImpl) ListAll(ctx context.Context) ([]*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListAll))
	log.Debug(ctx, msgListingProfiles)

	profiles, err := p.profileRepo.FindAll(ctx)
	if err != nil {
		log.Error(ctx, msgErrListProfiles, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingProfiles, err)
	}

	return profiles, nil
}

// AddExperience вставляет запись об опыте работы в начало коллекции.
func (p *ProfileUseCaseImpl) AddExperience(ctx context.Context, userID string, input *api.ExperienceInput) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddExperience), zap.String("userID", userID))
	log.Debug(ctx, msgAddingExperience)

	if err := validateExperience(input); err != nil {
		log.Debug(ctx, msgInvalidEntryInput, zap.Error(err))
		return nil, err
	}

	exp := &entities.Experience{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}

	if err := p.profileRepo.AddExperience(ctx, userID, exp); err != nil {
		log.Error(ctx, msgErrMutateEntry, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingEntry, err)
	}

	return p.findProfile(ctx, log, userID)
}

// RemoveExperience удаляет запись об опыте работы по ее ID.
// Отсутствующая запись считается ошибкой NotFound.
func (p *ProfileUseCaseImpl) RemoveExperience(ctx context.Context, userID, experienceID string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodRemoveExperience),
		zap.String("userID", userID),
		zap.String("experienceID", experienceID),
	)
	log.Debug(ctx, msgRemovingEntry)

	if err := p.profileRepo.RemoveExperience(ctx, userID, experienceID); err != nil {
		log.Debug(ctx, msgErrMutateEntry, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRemovingEntry, err)
	}

	return p.findProfile(ctx, log, userID)
}

// AddEducation вставляет запись об образовании в начало коллекции.
func (p *ProfileUseCaseImpl) AddEducation(ctx context.Context, userID string, input *api.EducationInput) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddEducation), zap.String("userID", userID))
	log.Debug(ctx, msgAddingEducation)

	if err := validateEducation(input); err != nil {
		log.Debug(ctx, msgInvalidEntryInput, zap.Error(err))
		return nil, err
	}

	edu := &entities.Education{
		ID:           uuid.New().String(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}

	if err := p.profileRepo.AddEducation(ctx, userID, edu); err != nil {
		log.Error(ctx, msgErrMutateEntry, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingEntry, err)
	}

	return p.findProfile(ctx, log, userID)
}

// RemoveEducation удаляет запись об образовании по ее ID.
func (p *ProfileUseCaseImpl) RemoveEducation(ctx context.Context, userID, educationID string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodRemoveEducation),
		zap.String("userID", userID),
		zap.String("educationID", educationID),
	)
	log.Debug(ctx, msgRemovingEntry)

	if err := p.profileRepo.RemoveEducation(ctx, userID, educationID); err != nil {
		log.Debug(ctx, msgErrMutateEntry, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRemovingEntry, err)
	}

	return p.findProfile(ctx, log, userID)
}

// DeleteAccount удаляет профиль и пользователя в одной транзакции.
// Посты, лайки и комментарии пользователя удаляются каскадно.
func (p *ProfileUseCaseImpl) DeleteAccount(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAccount), zap.String("userID", userID))
	log.Debug(ctx, msgDeletingAccount)

	if err := p.profileRepo.DeleteWithUser(ctx, userID); err != nil {
		log.Error(ctx, msgErrDeleteAccount, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingAccount, err)
	}

	log.Info(ctx, msgAccountDeleted)
	return nil
}

func (p *ProfileUseCaseImpl) findProfile(ctx context.Context, log *logger.Logger, userID string) (*entities.Profile, error) {
	profile, err := p.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Debug(ctx, msgErrFetchProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}
	return profile, nil
}

// Валидация обязательных полей записи об опыте работы.
func validateExperience(input *api.ExperienceInput) error {
	var messages []string

	if input.Title == "" {
		messages = append(messages, ValidationTitleRequired)
	}
	if input.Company == "" {
		messages = append(messages, ValidationCompanyRequired)
	}
	if input.Location == "" {
		messages = append(messages, ValidationLocationRequired)
	}
	if input.From == "" {
		messages = append(messages, ValidationFromRequired)
	}
	if input.Description == "" {
		messages = append(messages, ValidationDescriptionRequired)
	}

	if len(messages) > 0 {
		return entities.NewValidationError(messages...)
	}
	return nil
}

// Валидация обязательных полей записи об образовании.
func validateEducation(input *api.EducationInput) error {
	var messages []string

	if input.School == "" {
		messages = append(messages, ValidationSchoolRequired)
	}
	if input.Degree == "" {
		messages = append(messages, ValidationDegreeRequired)
	}
	if input.FieldOfStudy == "" {
		messages = append(messages, ValidationFieldOfStudyRequired)
	}
	if input.From == "" {
		messages = append(messages, ValidationFromRequired)
	}
	if input.Description == "" {
		messages = append(messages, ValidationDescriptionRequired)
	}

	if len(messages) > 0 {
		return entities.NewValidationError(messages...)
	}
	return nil
}
