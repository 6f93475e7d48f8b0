package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/oldthorntonians/matchday/internal/api/apierr"
	"github.com/oldthorntonians/matchday/internal/api/middleware"
	"github.com/oldthorntonians/matchday/internal/api/request"
	"github.com/oldthorntonians/matchday/internal/api/response"
	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/services/roster"
)

// PlayerHandler handles player self-registration endpoints
type PlayerHandler struct {
	rosterService *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

// Register handles POST /api/player/playerRegister
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	var req request.PlayerRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.GameID == "" {
		apierr.WriteError(w, apierr.NewValidationError("gameId is required"))
		return
	}

	available, err := strconv.ParseBool(req.PlayerAvailable)
	if err != nil {
		apierr.WriteError(w, apierr.NewValidationError("playerAvailable must be \"true\" or \"false\""))
		return
	}

	snap, game, err := h.rosterService.RegisterAvailability(r.Context(), userID, model.GameID(req.GameID), available)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RegistrationFromModel(game, *snap))
}
