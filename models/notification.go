package models

import "time"

type NoticeType string

const (
	NoticeTournament NoticeType = "tournament"
	NoticeWin        NoticeType = "win"
	NoticeMatch      NoticeType = "match"
)

// Notice is one entry of the notification list shown to a player.
type Notice struct {
	ID      string     `json:"id"`
	Type    NoticeType `json:"type"`
	Message string     `json:"message"`
	Time    string     `json:"time"`
	At      time.Time  `json:"at"`
}
