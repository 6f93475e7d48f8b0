package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/oldthorntonians/matchday/internal/api/apierr"
	"github.com/oldthorntonians/matchday/internal/api/middleware"
	"github.com/oldthorntonians/matchday/internal/api/request"
	"github.com/oldthorntonians/matchday/internal/api/response"
	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/services/roster"
)

// GameHandler handles game-day endpoints
type GameHandler struct {
	rosterService *roster.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(rosterService *roster.Service) *GameHandler {
	return &GameHandler{
		rosterService: rosterService,
	}
}

// Create handles POST /api/games/createGame
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.GameName == "" {
		apierr.WriteError(w, apierr.NewValidationError("gameName is required"))
		return
	}
	if req.GameDate == "" {
		apierr.WriteError(w, apierr.NewValidationError("gameDate is required"))
		return
	}

	gameDate, err := parseGameDate(req.GameDate)
	if err != nil {
		apierr.WriteError(w, apierr.NewValidationError("gameDate must be a valid date, e.g. 2024-06-01"))
		return
	}

	game, err := h.rosterService.CreateGame(r.Context(), userID, gameDate, req.GameName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Delete handles DELETE /api/games/deleteGame/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())
	gameID := model.GameID(mux.Vars(r)["id"])

	game, err := h.rosterService.DeleteGame(r.Context(), userID, gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameSummaryFromModel(game))
}

// Recent handles GET /api/games/recentGames
func (h *GameHandler) Recent(w http.ResponseWriter, r *http.Request) {
	games, err := h.rosterService.ListRecentGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(games))
}

// PlanTeamData handles GET /api/games/planTeamData/{id}
func (h *GameHandler) PlanTeamData(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())
	gameID := model.GameID(mux.Vars(r)["id"])

	game, err := h.rosterService.GetPlanningView(r.Context(), userID, gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// GameRegister handles POST /api/games/gameRegister (open/close registration)
func (h *GameHandler) GameRegister(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	var req request.GameRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.GameID == "" {
		apierr.WriteError(w, apierr.NewValidationError("gameId is required"))
		return
	}
	if req.GameClosed == nil {
		apierr.WriteError(w, apierr.NewValidationError("gameClosed is required; specify true or false"))
		return
	}

	game, err := h.rosterService.SetRegistrationOpenState(r.Context(), userID, model.GameID(req.GameID), *req.GameClosed)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// UpdateFinalTeam handles POST /api/games/updateFinalTeam
func (h *GameHandler) UpdateFinalTeam(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	var req request.UpdateFinalTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.GameID == "" {
		apierr.WriteError(w, apierr.NewValidationError("gameId is required"))
		return
	}

	game, err := h.rosterService.SetFinalTeam(r.Context(), userID, model.GameID(req.GameID), req.FinalTeam)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FinalTeam{
		GameID:    string(game.ID),
		FinalTeam: game.FinalTeam,
	})
}

// parseGameDate accepts RFC 3339 timestamps or plain dates
func parseGameDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
