package model

import "time"

// GameID uniquely identifies a game day
type GameID string

// MaxGameNameLength is the upper bound on game names
const MaxGameNameLength = 20

// PlayerSnapshot is a denormalized copy of a player's identity and profile
// taken at registration time. Entries deliberately do not reference the live
// profile: an availability entry reflects the player as they registered.
type PlayerSnapshot struct {
	UserID      UserID `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	DefaultTeam string `json:"defaultTeam"`
	Available   bool   `json:"available"`
}

// Game represents a single scheduled game day with its registration lifecycle
type Game struct {
	ID                 GameID
	GameDate           time.Time
	GameName           string
	PlayersAvailable   []PlayerSnapshot
	PlayersUnavailable []PlayerSnapshot
	FinalTeam          []PlayerSnapshot
	GameClosed         bool
	CreatedAt          time.Time
}

// SetAvailability places the snapshot in the list matching its Available
// flag, removing any entry for the same user from both lists first, so a
// user id appears in at most one list and never more than once. Reapplying
// the same availability is a no-op in membership terms.
func (g *Game) SetAvailability(snap PlayerSnapshot) {
	g.PlayersAvailable = removePlayer(g.PlayersAvailable, snap.UserID)
	g.PlayersUnavailable = removePlayer(g.PlayersUnavailable, snap.UserID)

	if snap.Available {
		g.PlayersAvailable = append(g.PlayersAvailable, snap)
	} else {
		g.PlayersUnavailable = append(g.PlayersUnavailable, snap)
	}
}

// SetClosed transitions the game between open and closed registration.
// Closing an open game locks in the team: FinalTeam becomes a copy of
// PlayersAvailable at that instant. Reopening does not clear FinalTeam,
// and later availability changes never alter a locked-in team.
func (g *Game) SetClosed(closed bool) {
	if closed && !g.GameClosed {
		g.FinalTeam = make([]PlayerSnapshot, len(g.PlayersAvailable))
		copy(g.FinalTeam, g.PlayersAvailable)
	}
	g.GameClosed = closed
}

// GetAvailability returns the snapshot the given user registered with, or
// nil if the user has not registered for this game. The snapshot's
// Available flag tells which list it sits in.
func (g *Game) GetAvailability(userID UserID) *PlayerSnapshot {
	for i := range g.PlayersAvailable {
		if g.PlayersAvailable[i].UserID == userID {
			return &g.PlayersAvailable[i]
		}
	}
	for i := range g.PlayersUnavailable {
		if g.PlayersUnavailable[i].UserID == userID {
			return &g.PlayersUnavailable[i]
		}
	}
	return nil
}

func removePlayer(snaps []PlayerSnapshot, userID UserID) []PlayerSnapshot {
	out := snaps[:0]
	for _, s := range snaps {
		if s.UserID != userID {
			out = append(out, s)
		}
	}
	return out
}
