package testutil

import (
	"habitpet/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockProfileRepository is a mock for ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) SaveProfile(profile domain.ArchivedProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfile(userID int64) (*domain.ArchivedProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedProfile), args.Error(1)
}
