package models

import "time"

// LoadState reports whether a dashboard load is in flight.
type LoadState string

const (
	LoadIdle    LoadState = "idle"
	LoadLoading LoadState = "loading"
	LoadReady   LoadState = "ready"
)

type DashboardStats struct {
	TournamentsPlayed int  `json:"tournaments_played"`
	Wins              int  `json:"wins"`
	WinRate           int  `json:"win_rate"`
	Rank              *int `json:"rank"`
}

type RecentMatch struct {
	Tournament string `json:"tournament"`
	Date       string `json:"date"`
	Placement  string `json:"placement"`
	Prize      string `json:"prize"`
	Status     string `json:"status"`
}

type UpcomingTournament struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Time   string `json:"time"`
	Slots  string `json:"slots"`
	Prize  string `json:"prize"`
	IsFull bool   `json:"is_full"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Progress    string `json:"progress,omitempty"`
}

// Dashboard is the aggregate shown on a player's dashboard.
type Dashboard struct {
	State         LoadState            `json:"state"`
	Gamertag      string               `json:"gamertag"`
	Stats         DashboardStats       `json:"stats"`
	RecentMatches []RecentMatch        `json:"recent_matches"`
	Upcoming      []UpcomingTournament `json:"upcoming_tournaments"`
	Achievements  []Achievement        `json:"achievements"`
	GeneratedAt   time.Time            `json:"generated_at"`
}
