package profilerepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/adapters/postgres"
	"devconnect/internal/domain/entities"
	"devconnect/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func profileColumns() []string {
	return []string{
		"user_id", "name", "avatar",
		"company", "website", "location", "status", "skills",
		"bio", "github_username", "social", "created_at", "updated_at",
	}
}

func TestProfileRepository_FindByUserID(t *testing.T) {
	ctx := testContext(t)

	userID := "profile-owner-id"
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешный поиск профиля с вложенными коллекциями", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("(?s)SELECT.+FROM profiles p.+JOIN users u").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows(profileColumns()).
					AddRow(userID, "John Doe", "avatar-url",
						"Acme", "https://acme.dev", "Berlin", "Developer", []string{"Go", "SQL"},
						"bio text", "johndoe", []byte(`{"twitter":"https://twitter.com/johndoe"}`), now, now),
			)

		mock.ExpectQuery("(?s)SELECT.+FROM profile_experience").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "title", "company", "location", "from_date", "to_date", "current", "description", "created_at"}).
					AddRow("exp-1", "Engineer", "Acme", "Berlin", "2020-01-01", "", true, "backend work", now),
			)

		mock.ExpectQuery("(?s)SELECT.+FROM profile_education").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "school", "degree", "field_of_study", "from_date", "to_date", "current", "description", "created_at"}).
					AddRow("edu-1", "MIT", "BSc", "CS", "2014-09-01", "2018-06-01", false, "studies", now),
			)

		repo := postgres.NewProfileRepository(mock)
		profile, err := repo.FindByUserID(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, profile.User.ID)
		assert.Equal(t, "John Doe", profile.User.Name)
		assert.Equal(t, []string{"Go", "SQL"}, profile.Skills)
		assert.Equal(t, "https://twitter.com/johndoe", profile.Social["twitter"])
		require.Len(t, profile.Experience, 1)
		assert.Equal(t, "exp-1", profile.Experience[0].ID)
		require.Len(t, profile.Education, 1)
		assert.Equal(t, "edu-1", profile.Education[0].ID)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Профиль не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("(?s)SELECT.+FROM profiles p.+JOIN users u").
			WithArgs("missing-user-id").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewProfileRepository(mock)
		profile, err := repo.FindByUserID(ctx, "missing-user-id")

		assert.Nil(t, profile)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrProfileNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Пустая карта социальных ссылок при NULL в колонке", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("(?s)SELECT.+FROM profiles p.+JOIN users u").
			WithArgs(userID).
			WillReturnRows(
				pgxmock.NewRows(profileColumns()).
					AddRow(userID, "John Doe", "avatar-url",
						"", "", "", "Developer", []string(nil),
						"", "", []byte(nil), now, now),
			)

		mock.ExpectQuery("(?s)SELECT.+FROM profile_experience").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "company", "location", "from_date", "to_date", "current", "description", "created_at"}))

		mock.ExpectQuery("(?s)SELECT.+FROM profile_education").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "school", "degree", "field_of_study", "from_date", "to_date", "current", "description", "created_at"}))

		repo := postgres.NewProfileRepository(mock)
		profile, err := repo.FindByUserID(ctx, userID)

		require.NoError(t, err)
		assert.NotNil(t, profile.Social)
		assert.Empty(t, profile.Social)
		assert.NotNil(t, profile.Skills)
		assert.Empty(t, profile.Skills)
		assert.Empty(t, profile.Experience)
		assert.Empty(t, profile.Education)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
