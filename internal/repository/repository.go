package repository

import (
	"habitpet/internal/domain"
)

// UserRepository defines user access operations
type UserRepository interface {
	GetUser(userID int64) (*domain.User, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// ProfileRepository defines storage of completed onboarding profiles
type ProfileRepository interface {
	SaveProfile(profile domain.ArchivedProfile) error
	GetProfile(userID int64) (*domain.ArchivedProfile, error)
}
