package model

import "time"

// UserID uniquely identifies a registered user across the system
type UserID string

// User represents a registered club member. The password hash never leaves
// the storage layer; API responses use the response types, not this struct.
type User struct {
	ID           UserID
	Name         string
	Email        string
	PasswordHash string // bcrypt hash
	Admin        bool
	CreatedAt    time.Time
}
