package storage

import (
	"context"
	"time"

	"github.com/oldthorntonians/matchday/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error

	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, userID model.UserID) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	DeleteProfile(ctx context.Context, userID model.UserID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	// ListGamesByDate returns games with GameDate in [from, to],
	// ordered by GameDate descending.
	ListGamesByDate(ctx context.Context, from, to time.Time) ([]*model.Game, error)
}
