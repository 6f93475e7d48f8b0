package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oldthorntonians/matchday/internal/api/apierr"
	"github.com/oldthorntonians/matchday/internal/api/middleware"
	"github.com/oldthorntonians/matchday/internal/api/request"
	"github.com/oldthorntonians/matchday/internal/api/response"
	"github.com/oldthorntonians/matchday/internal/services/auth"
)

// UserHandler handles registration, login and current-user endpoints
type UserHandler struct {
	authService *auth.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewValidationError("name is required"))
		return
	}
	if req.Email == "" {
		apierr.WriteError(w, apierr.NewValidationError("email is required"))
		return
	}
	if len(req.Password) < 6 {
		apierr.WriteError(w, apierr.NewValidationError("password must be at least 6 characters"))
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponse{
		User:  response.UserFromModel(user),
		Token: token,
	})
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Email == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewValidationError("email and password are required"))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponse{
		User:  response.UserFromModel(user),
		Token: token,
	})
}

// Me handles GET /api/auth/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}
