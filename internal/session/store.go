package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"gymslot/internal/models"

	"github.com/rs/zerolog"
)

var (
	// ErrMissingCredentials означает попытку входа без токена или пользователя
	ErrMissingCredentials = errors.New("session: token and user are required")
)

// Store holds the current authenticated identity. It is constructed once at
// process start, loaded from the repository, and mutated only through
// Login/Logout/CompleteOnboarding. Single writer, many readers.
type Store struct {
	repo   Repository
	logger *zerolog.Logger

	mu      sync.RWMutex
	current models.Session
}

func NewStore(repo Repository, logger *zerolog.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
	}
}

// Load restores the persisted session at startup. A corrupt user record is
// dropped rather than fatal: the token alone still authenticates requests.
func (s *Store) Load(ctx context.Context) error {
	token, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return err
	}

	rawUser, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		return err
	}

	var user *models.User
	if rawUser != "" {
		var u models.User
		if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to parse stored user, dropping it")
		} else {
			user = &u
		}
	}

	onboarding, err := s.repo.Get(ctx, KeyOnboarding)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = models.Session{
		User:               user,
		Token:              token,
		OnboardingComplete: onboarding == "true",
	}
	s.mu.Unlock()

	return nil
}

// Login records a successful authentication.
func (s *Store) Login(ctx context.Context, user *models.User, token string) error {
	if token == "" || user == nil {
		return ErrMissingCredentials
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := s.repo.Set(ctx, KeyToken, token); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, KeyUser, string(rawUser)); err != nil {
		return err
	}

	s.mu.Lock()
	onboarding := s.current.OnboardingComplete
	s.current = models.Session{User: user, Token: token, OnboardingComplete: onboarding}
	s.mu.Unlock()

	s.logger.Info().Str("user_id", user.ID).Msg("Session established")
	return nil
}

// CompleteOnboarding flips the onboarding flag. One-way, like the source.
func (s *Store) CompleteOnboarding(ctx context.Context) error {
	if err := s.repo.Set(ctx, KeyOnboarding, "true"); err != nil {
		return err
	}

	s.mu.Lock()
	s.current.OnboardingComplete = true
	s.mu.Unlock()
	return nil
}

// Logout destroys the session. The onboarding flag survives logout.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, KeyToken, KeyUser); err != nil {
		return err
	}

	s.mu.Lock()
	onboarding := s.current.OnboardingComplete
	s.current = models.Session{OnboardingComplete: onboarding}
	s.mu.Unlock()

	s.logger.Info().Msg("Session cleared")
	return nil
}

// Current returns a snapshot of the session.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}
