package factory

import (
	"errors"

	"github.com/oldthorntonians/matchday/internal/dependencies/clock"
	"github.com/oldthorntonians/matchday/internal/dependencies/random"
	"github.com/oldthorntonians/matchday/internal/services/auth"
	"github.com/oldthorntonians/matchday/internal/services/profile"
	"github.com/oldthorntonians/matchday/internal/services/roster"
	"github.com/oldthorntonians/matchday/internal/storage"
	"github.com/oldthorntonians/matchday/internal/storage/memory"
	redisstorage "github.com/oldthorntonians/matchday/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	ProfileService *profile.Service
	RosterService  *roster.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds auth service settings; Secret is required in production
	AuthConfig auth.Config
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg.AuthConfig), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		AuthService:    auth.New(store, clk, rnd, authCfg),
		ProfileService: profile.New(store, clk),
		RosterService:  roster.New(store, clk, rnd),
	}
}
