// Package ranking считает победы игроков в завершённых матчах и их места в общем зачёте.
package ranking

import (
	"errors"
	"sort"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/google/uuid"
)

var ErrNoRanking = errors.New("no ranking available")

// Standing is a player's win count in a ranking.
type Standing struct {
	PlayerID uuid.UUID
	Wins     int
}

// WinCounts tallies wins of completed matches and orders them by wins descending.
// Ties keep the order in which each player's first counted win appears in matches.
// Matches without a winner, or with a winner outside both slots, are skipped.
func WinCounts(matches []models.Match) []Standing {
	index := make(map[uuid.UUID]int)
	standings := make([]Standing, 0)

	for _, m := range matches {
		if !counts(m) {
			continue
		}
		winner := *m.WinnerID
		i, ok := index[winner]
		if !ok {
			i = len(standings)
			index[winner] = i
			standings = append(standings, Standing{PlayerID: winner})
		}
		standings[i].Wins++
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins > standings[j].Wins
	})
	return standings
}

func counts(m models.Match) bool {
	if m.Status != models.MatchCompleted || m.WinnerID == nil {
		return false
	}
	return m.HasPlayer(*m.WinnerID)
}

// Rank returns the 1-based position of playerID among players.
// A player without wins ranks last: len(players), or the number of winners
// when players is shorter than that.
func Rank(matches []models.Match, players []models.Player, playerID uuid.UUID) (int, error) {
	if len(players) == 0 {
		return 0, ErrNoRanking
	}
	standings := WinCounts(matches)
	for i, s := range standings {
		if s.PlayerID == playerID {
			return i + 1, nil
		}
	}
	return max(len(players), len(standings)), nil
}

// Leaderboard joins standings with player identities. Players with no wins follow
// the winners in the order of players and share the last rank, as Rank reports it.
func Leaderboard(matches []models.Match, players []models.Player) []models.LeaderboardEntry {
	gamertags := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		gamertags[p.ID] = p.Gamertag
	}

	standings := WinCounts(matches)
	entries := make([]models.LeaderboardEntry, 0, len(players))
	seen := make(map[uuid.UUID]bool, len(standings))

	for i, s := range standings {
		seen[s.PlayerID] = true
		entries = append(entries, models.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: s.PlayerID,
			Gamertag: gamertags[s.PlayerID],
			Wins:     s.Wins,
		})
	}

	last := len(players)
	if last < len(entries) {
		last = len(entries)
	}
	for _, p := range players {
		if seen[p.ID] {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			Rank:     last,
			PlayerID: p.ID,
			Gamertag: p.Gamertag,
		})
	}
	return entries
}

// Top returns at most n entries from the head of a leaderboard.
func Top(entries []models.LeaderboardEntry, n int) []models.LeaderboardEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
