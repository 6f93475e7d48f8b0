package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oldthorntonians/matchday/internal/api/handler"
	"github.com/oldthorntonians/matchday/internal/api/middleware"
	"github.com/oldthorntonians/matchday/internal/api/response"
	"github.com/oldthorntonians/matchday/internal/services/auth"
	"github.com/oldthorntonians/matchday/internal/services/profile"
	"github.com/oldthorntonians/matchday/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	ProfileService *profile.Service
	RosterService  *roster.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService, cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.RosterService)
	playerHandler := handler.NewPlayerHandler(cfg.RosterService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Public identity routes
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", userHandler.Login).Methods(http.MethodPost)

	// Current user (requires auth)
	authed := api.PathPrefix("/auth").Subrouter()
	authed.Use(authMiddleware)
	authed.HandleFunc("/me", userHandler.Me).Methods(http.MethodGet)

	// Profile routes (all require auth)
	profiles := api.PathPrefix("/profile").Subrouter()
	profiles.Use(authMiddleware)
	profiles.HandleFunc("", profileHandler.Create).Methods(http.MethodPost)
	profiles.HandleFunc("", profileHandler.Update).Methods(http.MethodPut)
	profiles.HandleFunc("", profileHandler.Delete).Methods(http.MethodDelete)
	profiles.HandleFunc("/me", profileHandler.Me).Methods(http.MethodGet)
	profiles.HandleFunc("/all", profileHandler.All).Methods(http.MethodGet)

	// Game-day routes (auth required; admin checks happen in the engine)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("/createGame", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/deleteGame/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/recentGames", gameHandler.Recent).Methods(http.MethodGet)
	games.HandleFunc("/planTeamData/{id}", gameHandler.PlanTeamData).Methods(http.MethodGet)
	games.HandleFunc("/gameRegister", gameHandler.GameRegister).Methods(http.MethodPost)
	games.HandleFunc("/updateFinalTeam", gameHandler.UpdateFinalTeam).Methods(http.MethodPost)

	// Player self-registration
	player := api.PathPrefix("/player").Subrouter()
	player.Use(authMiddleware)
	player.HandleFunc("/playerRegister", playerHandler.Register).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
