package ranking

import (
	"fmt"
	"testing"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(tag string) models.Player {
	return models.Player{ID: uuid.New(), Gamertag: tag}
}

func win(winner, loser models.Player) models.Match {
	w, l := winner.ID, loser.ID
	return models.Match{
		ID:        uuid.New(),
		Player1ID: &w,
		Player2ID: &l,
		WinnerID:  &w,
		Status:    models.MatchCompleted,
	}
}

func TestRank_ByWins(t *testing.T) {
	a, b, c := player("A"), player("B"), player("C")
	players := []models.Player{a, b, c}
	matches := []models.Match{win(a, b), win(b, c), win(a, c), win(a, b)}

	tests := []struct {
		name string
		id   uuid.UUID
		want int
	}{
		{"three wins", a.ID, 1},
		{"one win", b.ID, 2},
		{"no wins", c.ID, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rank(matches, players, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRank_ZeroWinsFallsBackToPlayerCount(t *testing.T) {
	players := make([]models.Player, 50)
	for i := range players {
		players[i] = player(fmt.Sprintf("p%d", i))
	}
	matches := []models.Match{win(players[0], players[1])}

	got, err := Rank(matches, players, players[49].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got)
}

func TestRank_EndToEnd(t *testing.T) {
	a, b, c := player("A"), player("B"), player("C")
	players := []models.Player{a, b, c}
	matches := []models.Match{win(a, b), win(a, c), win(b, c)}

	standings := WinCounts(matches)
	require.Len(t, standings, 2)
	assert.Equal(t, Standing{PlayerID: a.ID, Wins: 2}, standings[0])
	assert.Equal(t, Standing{PlayerID: b.ID, Wins: 1}, standings[1])

	for id, want := range map[uuid.UUID]int{a.ID: 1, b.ID: 2, c.ID: 3, uuid.New(): 3} {
		got, err := Rank(matches, players, id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRank_PartialPlayersNeverOutranksWinners(t *testing.T) {
	a, b, c, d := player("A"), player("B"), player("C"), player("D")
	matches := []models.Match{win(a, d), win(b, d), win(c, d)}
	// Only two players came back, but three have wins.
	players := []models.Player{a, d}

	got, err := Rank(matches, players, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = Rank(matches, players, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestRank_EmptyPlayers(t *testing.T) {
	a, b := player("A"), player("B")
	_, err := Rank([]models.Match{win(a, b)}, nil, a.ID)
	assert.ErrorIs(t, err, ErrNoRanking)
}

func TestWinCounts_SkipsUndecidedMatches(t *testing.T) {
	a, b, c := player("A"), player("B"), player("C")
	aID, bID, cID := a.ID, b.ID, c.ID

	matches := []models.Match{
		{Player1ID: &aID, Status: models.MatchCompleted},                             // bye
		{Player1ID: &aID, Player2ID: &bID, Status: models.MatchLive},                 // ongoing
		{Player1ID: &aID, Player2ID: &bID, WinnerID: &aID, Status: models.MatchLive}, // not completed yet
		{Player1ID: &aID, Player2ID: &bID, WinnerID: &cID, Status: models.MatchCompleted},
		win(b, a),
	}

	assert.Equal(t, []Standing{{PlayerID: b.ID, Wins: 1}}, WinCounts(matches))
}

func TestWinCounts_TieKeepsFirstEncounter(t *testing.T) {
	a, b, c := player("A"), player("B"), player("C")
	matches := []models.Match{win(c, a), win(b, a), win(a, b), win(c, b), win(b, c)}

	standings := WinCounts(matches)
	require.Len(t, standings, 3)
	assert.Equal(t, []uuid.UUID{c.ID, b.ID, a.ID},
		[]uuid.UUID{standings[0].PlayerID, standings[1].PlayerID, standings[2].PlayerID})
}

func TestRank_Idempotent(t *testing.T) {
	a, b, c := player("A"), player("B"), player("C")
	players := []models.Player{a, b, c}
	matches := []models.Match{win(b, a), win(c, a), win(c, b)}

	first := WinCounts(matches)
	second := WinCounts(matches)
	assert.Equal(t, first, second)

	r1, _ := Rank(matches, players, b.ID)
	r2, _ := Rank(matches, players, b.ID)
	assert.Equal(t, r1, r2)
}

func TestLeaderboard(t *testing.T) {
	a, b, c, d := player("A"), player("B"), player("C"), player("D")
	players := []models.Player{a, b, c, d}
	matches := []models.Match{win(b, a), win(b, c), win(a, c)}

	board := Leaderboard(matches, players)
	require.Len(t, board, 4)

	assert.Equal(t, models.LeaderboardEntry{Rank: 1, PlayerID: b.ID, Gamertag: "B", Wins: 2}, board[0])
	assert.Equal(t, models.LeaderboardEntry{Rank: 2, PlayerID: a.ID, Gamertag: "A", Wins: 1}, board[1])
	assert.Equal(t, models.LeaderboardEntry{Rank: 4, PlayerID: c.ID, Gamertag: "C"}, board[2])
	assert.Equal(t, models.LeaderboardEntry{Rank: 4, PlayerID: d.ID, Gamertag: "D"}, board[3])

	for _, e := range board {
		got, err := Rank(matches, players, e.PlayerID)
		require.NoError(t, err)
		assert.Equal(t, got, e.Rank)
	}

	assert.Len(t, Top(board, 3), 3)
	assert.Len(t, Top(board, 10), 4)
}
