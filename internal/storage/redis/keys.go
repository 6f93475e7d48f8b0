package redis

import (
	"strings"

	"github.com/oldthorntonians/matchday/internal/model"
)

// Key prefixes for the different document types
const (
	userKeyPrefix    = "matchday:user:"
	emailIndexPrefix = "matchday:user:email:"
	profileKeyPrefix = "matchday:profile:"
	gameKeyPrefix    = "matchday:game:"

	// profilesIndexKey is a set of all profile keys
	profilesIndexKey = "matchday:profiles"
	// gamesByDateKey is a sorted set of game keys scored by game date
	gamesByDateKey = "matchday:games:by-date"
)

func userKey(id model.UserID) string {
	return userKeyPrefix + string(id)
}

func emailIndexKey(email string) string {
	return emailIndexPrefix + strings.ToLower(strings.TrimSpace(email))
}

func profileKey(userID model.UserID) string {
	return profileKeyPrefix + string(userID)
}

func gameKey(id model.GameID) string {
	return gameKeyPrefix + string(id)
}
