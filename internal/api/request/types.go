package request

import "github.com/oldthorntonians/matchday/internal/model"

// RegisterUserRequest is the request body for registering a user
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest is the request body for creating or updating a profile
type ProfileRequest struct {
	DefaultTeam string `json:"defaultTeam"`
	Position    string `json:"position"`
}

// CreateGameRequest is the request body for creating a game day.
// GameDate accepts RFC 3339 timestamps or plain dates (2024-06-01).
type CreateGameRequest struct {
	GameDate string `json:"gameDate"`
	GameName string `json:"gameName"`
}

// PlayerRegisterRequest is the request body for registering availability.
// PlayerAvailable is a string ("true"/"false") on the wire.
type PlayerRegisterRequest struct {
	GameID          string `json:"gameId"`
	PlayerAvailable string `json:"playerAvailable"`
}

// GameRegisterRequest is the request body for opening/closing registration
type GameRegisterRequest struct {
	GameID     string `json:"gameId"`
	GameClosed *bool  `json:"gameClosed"`
}

// UpdateFinalTeamRequest is the request body for overwriting the final team
type UpdateFinalTeamRequest struct {
	GameID    string                 `json:"gameId"`
	FinalTeam []model.PlayerSnapshot `json:"finalTeam"`
}
