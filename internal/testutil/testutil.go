package testutil

import (
	"time"

	"habitpet/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestProfile creates a fully filled profile
func NewTestProfile() domain.Profile {
	return domain.Profile{
		Name:                 "Jane",
		Email:                "jane@example.com",
		Age:                  "31",
		Height:               "173 cm",
		Weight:               "68 kg",
		Goal:                 domain.GoalSlim,
		GoalDuration:         6,
		FoodPreferences:      domain.NewFoodSet("fish", "keto"),
		NotificationsEnabled: true,
	}
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
