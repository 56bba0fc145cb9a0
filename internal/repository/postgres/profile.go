package postgres

import (
	"database/sql"

	"habitpet/internal/domain"

	"github.com/lib/pq"
)

// ProfileRepo implements repository.ProfileRepository
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// SaveProfile stores a completed profile, replacing any earlier one of the same user
func (r *ProfileRepo) SaveProfile(p domain.ArchivedProfile) error {
	query := `
		INSERT INTO profiles (
			user_id, session_id, name, email, age, height, weight,
			goal, goal_duration, food_preferences, notifications_enabled, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			age = EXCLUDED.age,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			goal = EXCLUDED.goal,
			goal_duration = EXCLUDED.goal_duration,
			food_preferences = EXCLUDED.food_preferences,
			notifications_enabled = EXCLUDED.notifications_enabled,
			completed_at = EXCLUDED.completed_at
	`
	_, err := r.db.Exec(query,
		p.UserID,
		p.SessionID,
		p.Profile.Name,
		p.Profile.Email,
		p.Profile.Age,
		p.Profile.Height,
		p.Profile.Weight,
		string(p.Profile.Goal),
		p.Profile.GoalDuration,
		pq.Array(p.Profile.FoodPreferences.IDs()),
		p.Profile.NotificationsEnabled,
		p.CompletedAt,
	)
	return err
}

// GetProfile returns the stored profile of a user, or nil if there is none
func (r *ProfileRepo) GetProfile(userID int64) (*domain.ArchivedProfile, error) {
	query := `
		SELECT user_id, session_id, name, email, age, height, weight,
			goal, goal_duration, food_preferences, notifications_enabled, completed_at
		FROM profiles
		WHERE user_id = $1
	`

	var (
		p    domain.ArchivedProfile
		goal string
		food []string
	)
	err := r.db.QueryRow(query, userID).Scan(
		&p.UserID,
		&p.SessionID,
		&p.Profile.Name,
		&p.Profile.Email,
		&p.Profile.Age,
		&p.Profile.Height,
		&p.Profile.Weight,
		&goal,
		&p.Profile.GoalDuration,
		pq.Array(&food),
		&p.Profile.NotificationsEnabled,
		&p.CompletedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Profile.Goal = domain.Goal(goal)
	p.Profile.FoodPreferences = domain.NewFoodSet(food...)

	return &p, nil
}
