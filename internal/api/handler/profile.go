package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oldthorntonians/matchday/internal/api/apierr"
	"github.com/oldthorntonians/matchday/internal/api/middleware"
	"github.com/oldthorntonians/matchday/internal/api/request"
	"github.com/oldthorntonians/matchday/internal/api/response"
	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/services/auth"
	"github.com/oldthorntonians/matchday/internal/services/profile"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileService *profile.Service
	authService    *auth.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *profile.Service, authService *auth.Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
	}
}

// Create handles POST /api/profile
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	var req request.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.DefaultTeam == "" {
		apierr.WriteError(w, apierr.NewValidationError("defaultTeam is required"))
		return
	}

	p, err := h.profileService.Create(r.Context(), userID, req.DefaultTeam, req.Position)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.profileView(r, p))
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	var req request.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	p, err := h.profileService.Update(r.Context(), userID, req.DefaultTeam, req.Position)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.profileView(r, p))
}

// Me handles GET /api/profile/me
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	p, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.profileView(r, p))
}

// All handles GET /api/profile/all
func (h *ProfileHandler) All(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	views := make([]response.Profile, len(profiles))
	for i, p := range profiles {
		views[i] = h.profileView(r, p)
	}

	response.JSON(w, http.StatusOK, views)
}

// Delete handles DELETE /api/profile; removes the profile and the user
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	if err := h.profileService.Delete(r.Context(), userID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"msg": "User deleted"})
}

// profileView joins the profile with its owning user for the response.
// A missing user is tolerated; the view simply omits name and email.
func (h *ProfileHandler) profileView(r *http.Request, p *model.Profile) response.Profile {
	user, _ := h.authService.GetUser(r.Context(), p.UserID)
	return response.ProfileFromModel(p, user)
}
