package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated identity attached to a request.
type Session struct {
	PlayerID  uuid.UUID  `json:"player_id"`
	Role      PlayerRole `json:"role"`
	Gamertag  string     `json:"gamertag"`
	TokenID   string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
}
