package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user
type User struct {
	UserID    uuid.UUID `json:"_id" db:"user_id"`       // Store-generated identifier
	Username  string    `json:"username" db:"username"` // Unique username
	CreatedAt time.Time `json:"-" db:"created_at"`      // Creation timestamp
}
