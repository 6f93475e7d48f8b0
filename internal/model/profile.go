package model

import "time"

// DefaultPosition is assigned when a profile is created without a position
const DefaultPosition = "NK"

// Profile holds a player's default team and position, keyed by user id.
// A user has at most one profile; availability registration requires one.
type Profile struct {
	UserID      UserID
	DefaultTeam string
	Position    string
	Rating      int // 0 when unrated
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
