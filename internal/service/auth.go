package service

import (
	"crypto/subtle"

	"habitpet/internal/repository"
)

// AuthService gates the bot behind an optional access password
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
}

// NewAuthService creates a new auth service. An empty password admits everyone.
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
	}
}

// Enabled reports whether a password is required
func (s *AuthService) Enabled() bool {
	return s.botPassword != ""
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if !s.Enabled() {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) == 1
}

// IsAuthorized checks if user may use the bot
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	if !s.Enabled() {
		return true, nil
	}
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return false, err
	}
	return user != nil && user.Authorized, nil
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) error {
	return s.userRepo.AuthorizeUser(userID)
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
