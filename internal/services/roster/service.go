package roster

import (
	"context"
	"strings"
	"time"

	"github.com/oldthorntonians/matchday/internal/dependencies/clock"
	"github.com/oldthorntonians/matchday/internal/dependencies/random"
	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/storage"
)

const (
	// GameIDLength is the length of generated game ids (after the prefix)
	GameIDLength = 16
	// IDAlphabet is the characters used in generated ids
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// RecentWindowPast is how far back ListRecentGames reaches
	RecentWindowPast = 15 * 24 * time.Hour
	// RecentWindowFuture is how far forward ListRecentGames reaches
	RecentWindowFuture = 365 * 24 * time.Hour
)

// Service is the game roster engine. It owns the lifecycle of game days:
// creation, player self-registration, open/close transitions and final-team
// assignment. It reads identity and profile records but never mutates them.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// New creates a new roster service
func New(storage storage.Storage, clk clock.Clock, rnd random.Random) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		random:  rnd,
	}
}

// CreateGame creates a new open game day. Admin only.
func (s *Service) CreateGame(ctx context.Context, requestingUserID model.UserID, gameDate time.Time, gameName string) (*model.Game, error) {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	gameName = strings.TrimSpace(gameName)
	if gameName == "" || len(gameName) > model.MaxGameNameLength {
		return nil, model.ErrInvalidGameName
	}
	if gameDate.IsZero() {
		return nil, model.ErrInvalidGameName
	}

	game := &model.Game{
		ID:                 model.GameID("g_" + s.random.String(GameIDLength, IDAlphabet)),
		GameDate:           gameDate,
		GameName:           gameName,
		PlayersAvailable:   []model.PlayerSnapshot{},
		PlayersUnavailable: []model.PlayerSnapshot{},
		FinalTeam:          []model.PlayerSnapshot{},
		GameClosed:         false,
		CreatedAt:          s.clock.Now(),
	}

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes a game permanently and returns the deleted game so the
// caller can echo its name and date. Admin only.
func (s *Service) DeleteGame(ctx context.Context, requestingUserID model.UserID, gameID model.GameID) (*model.Game, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	if err := s.storage.DeleteGame(ctx, gameID); err != nil {
		return nil, err
	}
	return game, nil
}

// ListRecentGames returns games dated between 15 days ago and a year ahead,
// newest game date first. An empty result is not an error.
func (s *Service) ListRecentGames(ctx context.Context) ([]*model.Game, error) {
	now := s.clock.Now()
	return s.storage.ListGamesByDate(ctx, now.Add(-RecentWindowPast), now.Add(RecentWindowFuture))
}

// RegisterAvailability records whether the requesting user is available for
// the given game. The snapshot is denormalized from the user's identity and
// profile at call time and placed in exactly one of the two lists; repeating
// the same registration leaves membership unchanged.
func (s *Service) RegisterAvailability(ctx context.Context, requestingUserID model.UserID, gameID model.GameID, available bool) (*model.PlayerSnapshot, *model.Game, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if game.GameClosed {
		return nil, nil, model.ErrRegistrationClosed
	}

	user, err := s.storage.GetUser(ctx, requestingUserID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.storage.GetProfile(ctx, requestingUserID)
	if err != nil {
		return nil, nil, err
	}

	snap := model.PlayerSnapshot{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Position:    profile.Position,
		DefaultTeam: profile.DefaultTeam,
		Available:   available,
	}

	game.SetAvailability(snap)

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, nil, err
	}
	return &snap, game, nil
}

// SetRegistrationOpenState opens or closes registration for a game. Closing
// locks in the final team from the currently available players; reopening
// leaves the final team untouched. Admin only.
func (s *Service) SetRegistrationOpenState(ctx context.Context, requestingUserID model.UserID, gameID model.GameID, gameClosed bool) (*model.Game, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	game.SetClosed(gameClosed)

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// SetFinalTeam overwrites a game's final team, regardless of whether the
// game is open or closed. Admin only.
func (s *Service) SetFinalTeam(ctx context.Context, requestingUserID model.UserID, gameID model.GameID, finalTeam []model.PlayerSnapshot) (*model.Game, error) {
	if len(finalTeam) == 0 {
		return nil, model.ErrEmptyFinalTeam
	}

	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	game.FinalTeam = finalTeam

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// GetPlanningView returns the full game detail, both availability lists
// included, for manual roster planning. Admin only.
func (s *Service) GetPlanningView(ctx context.Context, requestingUserID model.UserID, gameID model.GameID) (*model.Game, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}
	return game, nil
}

// requireAdmin is the single authorization check applied by every
// admin-gated operation.
func (s *Service) requireAdmin(ctx context.Context, userID model.UserID) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Admin {
		return model.ErrNotAdmin
	}
	return nil
}
