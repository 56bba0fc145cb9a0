package postgres

import (
	"database/sql"

	"habitpet/internal/domain"
)

// UserRepo implements repository.UserRepository on top of PostgreSQL
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns a user, or nil if the user has never written to the bot
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT user_id, authorized, created_at FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&u.UserID, &u.Authorized, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// AuthorizeUser marks a user as allowed to use the bot
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists registers a user on first contact.
// Profiles reference users, so this runs before any profile is archived.
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}
