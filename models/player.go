package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerRole соответствует колонке players.role.
type PlayerRole string

const (
	RoleUser  PlayerRole = "user"
	RoleAdmin PlayerRole = "admin"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// Player is a registered community member.
type Player struct {
	ID           uuid.UUID  `json:"id"`
	PlayerName   string     `json:"player_name"`
	Email        string     `json:"email"`
	Gamertag     string     `json:"gamertag"`
	SkillLevel   SkillLevel `json:"skill_level"`
	Role         PlayerRole `json:"role"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	AvatarKey *string `json:"-"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
