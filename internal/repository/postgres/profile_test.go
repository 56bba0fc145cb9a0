package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"habitpet/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{
	"user_id", "session_id", "name", "email", "age", "height", "weight",
	"goal", "goal_duration", "food_preferences", "notifications_enabled", "completed_at",
}

func TestProfileRepo_SaveProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProfileRepo(db)

	completedAt := time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC)
	archived := domain.ArchivedProfile{
		UserID:    123,
		SessionID: "8d3c1f0e-8a0b-4f7e-9d8f-2b7f5a1c9e11",
		Profile: domain.Profile{
			Name:                 "Jane",
			Email:                "jane@example.com",
			Age:                  "31",
			Height:               "173 cm",
			Weight:               "68 kg",
			Goal:                 domain.GoalSlim,
			GoalDuration:         6,
			FoodPreferences:      domain.NewFoodSet("fish", "mediterranean"),
			NotificationsEnabled: true,
		},
		CompletedAt: completedAt,
	}

	mock.ExpectExec("INSERT INTO profiles .* ON CONFLICT \\(user_id\\) DO UPDATE SET").
		WithArgs(
			int64(123),
			archived.SessionID,
			"Jane",
			"jane@example.com",
			"31",
			"173 cm",
			"68 kg",
			"slim",
			6,
			`{"mediterranean","fish"}`,
			true,
			completedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveProfile(archived)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepo_SaveProfile_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProfileRepo(db)

	mock.ExpectExec("INSERT INTO profiles").
		WillReturnError(fmt.Errorf("insert or update on table \"profiles\" violates foreign key constraint"))

	err = repo.SaveProfile(domain.ArchivedProfile{UserID: 1, Profile: domain.Profile{FoodPreferences: domain.NewFoodSet()}})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepo_GetProfile(t *testing.T) {
	completedAt := time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name:   "profile found",
			userID: 123,
			mockRows: sqlmock.NewRows(profileColumns).
				AddRow(123, "sid", "Jane", "jane@example.com", "31", "173 cm", "68 kg", "strong", 4, "{keto,fish}", false, completedAt),
		},
		{
			name:        "no profile",
			userID:      456,
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedNil:   true,
			expectedError: true,
		},
		{
			name:   "scan error",
			userID: 123,
			mockRows: sqlmock.NewRows(profileColumns).
				AddRow("invalid", "sid", "Jane", "jane@example.com", "31", "173 cm", "68 kg", "strong", 4, "{}", false, completedAt),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewProfileRepo(db)

			query := "SELECT user_id, session_id, name, email, age, height, weight, goal, goal_duration, food_preferences, notifications_enabled, completed_at FROM profiles WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			archived, err := repo.GetProfile(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectedNil {
				assert.Nil(t, archived)
			} else if assert.NotNil(t, archived) {
				assert.Equal(t, tt.userID, archived.UserID)
				assert.Equal(t, "Jane", archived.Profile.Name)
				assert.Equal(t, domain.GoalStrong, archived.Profile.Goal)
				assert.Equal(t, 4, archived.Profile.GoalDuration)
				assert.Equal(t, domain.NewFoodSet("keto", "fish"), archived.Profile.FoodPreferences)
				assert.True(t, completedAt.Equal(archived.CompletedAt))
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
