package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"habitpet/internal/domain"
	"habitpet/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoSession is returned when a user acts without an onboarding session
var ErrNoSession = errors.New("no onboarding session")

type session struct {
	state    domain.State
	lastSeen time.Time
	archived bool
}

// OnboardingService keeps one in-memory onboarding flow per user.
// Sessions are lost on restart; only completed profiles are archived.
type OnboardingService struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
	now         func() time.Time

	sessions map[int64]*session
	mu       sync.RWMutex
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(profileRepo repository.ProfileRepository, logger *zap.Logger) *OnboardingService {
	return &OnboardingService{
		profileRepo: profileRepo,
		logger:      logger,
		now:         time.Now,
		sessions:    make(map[int64]*session),
	}
}

// SetClock replaces the time source
func (s *OnboardingService) SetClock(now func() time.Time) {
	s.now = now
}

// Start begins a fresh flow for the user, dropping any flow in progress
func (s *OnboardingService) Start(userID int64) domain.State {
	now := s.now()
	state := domain.NewState(uuid.NewString(), now)

	s.mu.Lock()
	s.sessions[userID] = &session{state: state, lastSeen: now}
	s.mu.Unlock()

	s.logger.Info("Onboarding started",
		zap.Int64("user_id", userID),
		zap.String("session_id", state.SessionID),
	)
	return state
}

// Current returns the user's flow state
func (s *OnboardingService) Current(userID int64) (domain.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[userID]
	if !exists {
		return domain.State{}, false
	}
	return sess.state, true
}

// Apply runs an action against the user's flow.
// On error the returned state is the unchanged current state.
func (s *OnboardingService) Apply(userID int64, action domain.Action) (domain.State, error) {
	s.mu.Lock()
	sess, exists := s.sessions[userID]
	if !exists {
		s.mu.Unlock()
		return domain.State{}, ErrNoSession
	}

	sess.lastSeen = s.now()
	next, err := sess.state.Apply(action)
	if err != nil {
		current := sess.state
		s.mu.Unlock()
		return current, err
	}

	from := sess.state.Screen()
	sess.state = next
	archive := next.Completed() && !sess.archived
	if archive {
		sess.archived = true
	}
	s.mu.Unlock()

	if to := next.Screen(); to != from {
		s.logger.Info("Onboarding screen changed",
			zap.Int64("user_id", userID),
			zap.String("session_id", next.SessionID),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}

	if archive {
		s.archive(userID, next)
	}

	return next, nil
}

// Reset drops the user's flow in progress
func (s *OnboardingService) Reset(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.sessions[userID]
	delete(s.sessions, userID)
	return exists
}

// ArchivedProfile returns the last completed profile of a user, or nil
func (s *OnboardingService) ArchivedProfile(userID int64) (*domain.ArchivedProfile, error) {
	if s.profileRepo == nil {
		return nil, nil
	}
	p, err := s.profileRepo.GetProfile(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// SweepIdle drops sessions not touched within ttl and returns how many were dropped
func (s *OnboardingService) SweepIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for userID, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, userID)
			dropped++
		}
	}
	return dropped
}

// RunSweeper sweeps idle sessions every interval until ctx is cancelled
func (s *OnboardingService) RunSweeper(ctx context.Context, interval, ttl time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session sweeper stopped")
			return nil
		case <-ticker.C:
			if dropped := s.SweepIdle(ttl); dropped > 0 {
				s.logger.Info("Dropped idle onboarding sessions", zap.Int("count", dropped))
			}
		}
	}
}

func (s *OnboardingService) archive(userID int64, state domain.State) {
	if s.profileRepo == nil {
		return
	}

	err := s.profileRepo.SaveProfile(domain.ArchivedProfile{
		UserID:      userID,
		SessionID:   state.SessionID,
		Profile:     state.Profile.Clone(),
		CompletedAt: s.now(),
	})
	if err != nil {
		s.logger.Error("Failed to archive profile",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("session_id", state.SessionID),
		)
		return
	}

	s.logger.Info("Profile archived",
		zap.Int64("user_id", userID),
		zap.String("session_id", state.SessionID),
	)
}
