package profile

import (
	"context"

	"github.com/oldthorntonians/matchday/internal/dependencies/clock"
	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/storage"
)

// Service manages player profiles
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new profile service
func New(storage storage.Storage, clk clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
	}
}

// Create creates a profile for the given user. Creating over an existing
// profile overwrites it, matching upsert semantics for the profile document.
func (s *Service) Create(ctx context.Context, userID model.UserID, defaultTeam, position string) (*model.Profile, error) {
	if _, err := s.storage.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	if position == "" {
		position = model.DefaultPosition
	}

	now := s.clock.Now()
	profile := &model.Profile{
		UserID:      userID,
		DefaultTeam: defaultTeam,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update changes the default team and position on an existing profile
func (s *Service) Update(ctx context.Context, userID model.UserID, defaultTeam, position string) (*model.Profile, error) {
	profile, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if defaultTeam != "" {
		profile.DefaultTeam = defaultTeam
	}
	if position != "" {
		profile.Position = position
	}
	profile.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get returns the profile for the given user
func (s *Service) Get(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	return s.storage.GetProfile(ctx, userID)
}

// List returns all profiles
func (s *Service) List(ctx context.Context) ([]*model.Profile, error) {
	return s.storage.ListProfiles(ctx)
}

// Delete removes the user's profile along with the user account itself
func (s *Service) Delete(ctx context.Context, userID model.UserID) error {
	if err := s.storage.DeleteProfile(ctx, userID); err != nil {
		return err
	}
	return s.storage.DeleteUser(ctx, userID)
}
