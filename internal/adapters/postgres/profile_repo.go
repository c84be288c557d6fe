package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"devconnect/internal/domain/entities"
	"devconnect/internal/ports/repositories"
	"devconnect/pkg/logger"
)

// ProfileRepository реализует интерфейс repositories.ProfileRepository для работы с Postgres.
type ProfileRepository struct {
	pool PgxPoolInterface
}

// NewProfileRepository создает новый экземпляр репозитория профилей.
func NewProfileRepository(pool PgxPoolInterface) repositories.ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileSelectColumns = `
        p.user_id, u.name, u.avatar,
        p.company, p.website, p.location, p.status, p.skills,
        p.bio, p.github_username, p.social, p.created_at, p.updated_at
`

// Upsert атомарно создает или частично обновляет профиль пользователя.
// NULL-аргументы не затрагивают сохраненные значения, карта социальных
// ссылок сливается поключево на стороне базы.
func (r *ProfileRepository) Upsert(ctx context.Context, userID string, patch *entities.ProfilePatch) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "Upsert"))

	query := `
        INSERT INTO profiles (user_id, company, website, location, status, skills, bio, github_username, social)
        VALUES (
            $1,
            COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
            COALESCE($6, '{}'::text[]),
            COALESCE($7, ''), COALESCE($8, ''),
            COALESCE($9, '{}'::jsonb)
        )
        ON CONFLICT (user_id) DO UPDATE SET
            company         = COALESCE($2, profiles.company),
            website         = COALESCE($3, profiles.website),
            location        = COALESCE($4, profiles.location),
            status          = COALESCE($5, profiles.status),
            skills          = COALESCE($6, profiles.skills),
            bio             = COALESCE($7, profiles.bio),
            github_username = COALESCE($8, profiles.github_username),
            social          = profiles.social || COALESCE($9, '{}'::jsonb),
            updated_at      = now()
    `

	var social any
	if patch.Social != nil {
		raw, err := json.Marshal(patch.Social)
		if err != nil {
			return nil, fmt.Errorf("error encoding social links: %w", err)
		}
		social = raw
	}

	_, err := r.pool.Exec(ctx, query,
		userID,
		patch.Company,
		patch.Website,
		patch.Location,
		patch.Status,
		patch.Skills,
		patch.Bio,
		patch.GithubUsername,
		social,
	)
	if err != nil {
		log.Error(ctx, "error upserting profile", zap.Error(err))
		return nil, fmt.Errorf("error upserting profile: %w", err)
	}

	return r.FindByUserID(ctx, userID)
}

// FindByUserID находит профиль пользователя вместе с записями об опыте и образовании.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "FindByUserID"))

	query := `
        SELECT ` + profileSelectColumns + `
        FROM profiles p
        JOIN users u ON u.id = p.user_id
        WHERE p.user_id = $1
    `

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "profile not found", zap.String("userID", userID))
			return nil, entities.ErrProfileNotFound
		}
		log.Error(ctx, "error finding profile", zap.Error(err))
		return nil, fmt.Errorf("error querying profile: %w", err)
	}

	if profile.Experience, err = r.listExperience(ctx, userID); err != nil {
		return nil, err
	}
	if profile.Education, err = r.listEducation(ctx, userID); err != nil {
		return nil, err
	}

	return profile, nil
}

// FindAll возвращает все профили вместе с их вложенными коллекциями.
func (r *ProfileRepository) FindAll(ctx context.Context) ([]*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "FindAll"))

	query := `
        SELECT ` + profileSelectColumns + `
        FROM profiles p
        JOIN users u ON u.id = p.user_id
        ORDER BY p.created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing profiles", zap.Error(err))
		return nil, fmt.Errorf("error querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*entities.Profile, 0)
	byUser := make(map[string]*entities.Profile)
	for rows.Next() {
		profile, scanErr := scanProfile(rows)
		if scanErr != nil {
			log.Error(ctx, "error scanning profile row", zap.Error(scanErr))
			return nil, fmt.Errorf("error scanning profile row: %w", scanErr)
		}
		profiles = append(profiles, profile)
		byUser[profile.User.ID] = profile
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	if len(profiles) == 0 {
		return profiles, nil
	}

	for _, profile := range profiles {
		if profile.Experience, err = r.listExperience(ctx, profile.User.ID); err != nil {
			return nil, err
		}
		if profile.Education, err = r.listEducation(ctx, profile.User.ID); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

// AddExperience добавляет запись об опыте работы в профиль.
func (r *ProfileRepository) AddExperience(ctx context.Context, userID string, exp *entities.Experience) error {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "AddExperience"))

	query := `
        INSERT INTO profile_experience (id, user_id, title, company, location, from_date, to_date, current, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at
    `

	err := r.pool.QueryRow(ctx, query,
		exp.ID,
		userID,
		exp.Title,
		exp.Company,
		exp.Location,
		exp.From,
		exp.To,
		exp.Current,
		exp.Description,
	).Scan(&exp.CreatedAt)
	if err != nil {
		log.Error(ctx, "error adding experience", zap.Error(err))
		return fmt.Errorf("error adding experience: %w", err)
	}

	return nil
}

// RemoveExperience удаляет запись об опыте работы. Чужие и несуществующие
// записи дают entities.ErrExperienceNotFound.
func (r *ProfileRepository) RemoveExperience(ctx context.Context, userID, experienceID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "RemoveExperience"))

	query := `DELETE FROM profile_experience WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, experienceID, userID)
	if err != nil {
		log.Error(ctx, "error removing experience", zap.Error(err))
		return fmt.Errorf("error removing experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "experience entry not found", zap.String("experienceID", experienceID))
		return entities.ErrExperienceNotFound
	}

	return nil
}

// AddEducation добавляет запись об образовании в профиль.
func (r *ProfileRepository) AddEducation(ctx context.Context, userID string, edu *entities.Education) error {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "AddEducation"))

	query := `
        INSERT INTO profile_education (id, user_id, school, degree, field_of_study, from_date, to_date, current, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at
    `

	err := r.pool.QueryRow(ctx, query,
		edu.ID,
		userID,
		edu.School,
		edu.Degree,
		edu.FieldOfStudy,
		edu.From,
		edu.To,
		edu.Current,
		edu.Description,
	).Scan(&edu.CreatedAt)
	if err != nil {
		log.Error(ctx, "error adding education", zap.Error(err))
		return fmt.Errorf("error adding education: %w", err)
	}

	return nil
}

// RemoveEducation удаляет запись об образовании. Чужие и несуществующие
// записи дают entities.ErrEducationNotFound.
func (r *ProfileRepository) RemoveEducation(ctx context.Context, userID, educationID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "RemoveEducation"))

	query := `DELETE FROM profile_education WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, educationID, userID)
	if err != nil {
		log.Error(ctx, "error removing education", zap.Error(err))
		return fmt.Errorf("error removing education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "education entry not found", zap.String("educationID", educationID))
		return entities.ErrEducationNotFound
	}

	return nil
}

// DeleteWithUser удаляет профиль и самого пользователя в одной транзакции.
// Посты, лайки и комментарии пользователя удаляются каскадно.
func (r *ProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "DeleteWithUser"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID); err != nil {
		log.Error(ctx, "error deleting profile", zap.Error(err))
		return fmt.Errorf("error deleting profile: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "user not found", zap.String("userID", userID))
		return entities.ErrUserNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing transaction", zap.Error(err))
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func (r *ProfileRepository) listExperience(ctx context.Context, userID string) ([]entities.Experience, error) {
	query := `
        SELECT id, title, company, location, from_date, to_date, current, description, created_at
        FROM profile_experience
        WHERE user_id = $1
        ORDER BY created_at DESC, id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying experience: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Experience, 0)
	for rows.Next() {
		var exp entities.Experience
		if err = rows.Scan(
			&exp.ID,
			&exp.Title,
			&exp.Company,
			&exp.Location,
			&exp.From,
			&exp.To,
			&exp.Current,
			&exp.Description,
			&exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning experience row: %w", err)
		}
		items = append(items, exp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating experience: %w", err)
	}

	return items, nil
}

func (r *ProfileRepository) listEducation(ctx context.Context, userID string) ([]entities.Education, error) {
	query := `
        SELECT id, school, degree, field_of_study, from_date, to_date, current, description, created_at
        FROM profile_education
        WHERE user_id = $1
        ORDER BY created_at DESC, id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying education: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Education, 0)
	for rows.Next() {
		var edu entities.Education
		if err = rows.Scan(
			&edu.ID,
			&edu.School,
			&edu.Degree,
			&edu.FieldOfStudy,
			&edu.From,
			&edu.To,
			&edu.Current,
			&edu.Description,
			&edu.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning education row: %w", err)
		}
		items = append(items, edu)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating education: %w", err)
	}

	return items, nil
}

// scanProfile читает строку профиля из объединенного запроса profiles + users.
func scanProfile(row pgx.Row) (*entities.Profile, error) {
	var (
		profile entities.Profile
		social  []byte
	)

	err := row.Scan(
		&profile.User.ID,
		&profile.User.Name,
		&profile.User.Avatar,
		&profile.Company,
		&profile.Website,
		&profile.Location,
		&profile.Status,
		&profile.Skills,
		&profile.Bio,
		&profile.GithubUsername,
		&social,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.Social = make(map[string]string)
	if len(social) > 0 {
		if err = json.Unmarshal(social, &profile.Social); err != nil {
			return nil, fmt.Errorf("error decoding social links: %w", err)
		}
	}
	if profile.Skills == nil {
		profile.Skills = make([]string, 0)
	}

	return &profile, nil
}
