package response

import (
	"time"

	"github.com/oldthorntonians/matchday/internal/model"
)

// User represents a user in API responses
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is the response for registration and login
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Profile represents a profile in API responses, joined with the owning
// user's name and email
type Profile struct {
	UserID      string    `json:"userId"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	DefaultTeam string    `json:"defaultTeam"`
	Position    string    `json:"position"`
	Rating      int       `json:"rating,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileFromModel converts a model.Profile to a response Profile.
// The user may be nil when identity fields are not available.
func ProfileFromModel(p *model.Profile, u *model.User) Profile {
	resp := Profile{
		UserID:      string(p.UserID),
		DefaultTeam: p.DefaultTeam,
		Position:    p.Position,
		Rating:      p.Rating,
		UpdatedAt:   p.UpdatedAt,
	}
	if u != nil {
		resp.Name = u.Name
		resp.Email = u.Email
	}
	return resp
}

// Game represents a game day in API responses
type Game struct {
	ID                 string                 `json:"id"`
	GameDate           time.Time              `json:"gameDate"`
	GameName           string                 `json:"gameName"`
	PlayersAvailable   []model.PlayerSnapshot `json:"playersAvailable"`
	PlayersUnavailable []model.PlayerSnapshot `json:"playersUnavailable"`
	FinalTeam          []model.PlayerSnapshot `json:"finalTeam"`
	GameClosed         bool                   `json:"gameClosed"`
	CreatedAt          time.Time              `json:"createdAt"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:                 string(g.ID),
		GameDate:           g.GameDate,
		GameName:           g.GameName,
		PlayersAvailable:   emptyIfNil(g.PlayersAvailable),
		PlayersUnavailable: emptyIfNil(g.PlayersUnavailable),
		FinalTeam:          emptyIfNil(g.FinalTeam),
		GameClosed:         g.GameClosed,
		CreatedAt:          g.CreatedAt,
	}
}

// GameSummary echoes a game's key fields, used for delete confirmations
type GameSummary struct {
	GameName string    `json:"gameName"`
	GameDate time.Time `json:"gameDate"`
}

// GameSummaryFromModel converts a model.Game to a GameSummary
func GameSummaryFromModel(g *model.Game) GameSummary {
	return GameSummary{
		GameName: g.GameName,
		GameDate: g.GameDate,
	}
}

// Registration is the response after registering availability: the snapshot
// that was written and which list it now resides in.
type Registration struct {
	GameID   string               `json:"gameId"`
	Player   model.PlayerSnapshot `json:"player"`
	List     string               `json:"list"`
	GameName string               `json:"gameName"`
}

// RegistrationFromModel builds a Registration from the written snapshot
func RegistrationFromModel(g *model.Game, snap model.PlayerSnapshot) Registration {
	list := "playersUnavailable"
	if snap.Available {
		list = "playersAvailable"
	}
	return Registration{
		GameID:   string(g.ID),
		Player:   snap,
		List:     list,
		GameName: g.GameName,
	}
}

// GameList is the response for listing recent games
type GameList struct {
	Games []Game `json:"games"`
}

// GameListFromModel converts a slice of games
func GameListFromModel(games []*model.Game) GameList {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return GameList{Games: out}
}

// FinalTeam is the response after overwriting a final team
type FinalTeam struct {
	GameID    string                 `json:"gameId"`
	FinalTeam []model.PlayerSnapshot `json:"finalTeam"`
}

func emptyIfNil(snaps []model.PlayerSnapshot) []model.PlayerSnapshot {
	if snaps == nil {
		return []model.PlayerSnapshot{}
	}
	return snaps
}
