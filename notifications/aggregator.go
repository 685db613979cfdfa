// Package notifications собирает ленту уведомлений игрока из уже загруженных турниров и матчей.
package notifications

import (
	"fmt"
	"sort"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/utils"
)

// Windows bounds which events produce a notice.
type Windows struct {
	Tournament    time.Duration
	Match         time.Duration
	FallbackPrize float64
}

func DefaultWindows() Windows {
	return Windows{
		Tournament:    24 * time.Hour,
		Match:         30 * time.Minute,
		FallbackPrize: 250,
	}
}

// Input holds the three independently fetched slices. Tournaments and matches are
// expected in start order, wins most recent first.
type Input struct {
	Tournaments []models.Tournament
	Wins        []models.Match
	Matches     []models.Match
}

type Aggregator struct {
	windows Windows
}

func NewAggregator(w Windows) *Aggregator {
	return &Aggregator{windows: w}
}

// Aggregate returns tournament notices, then win notices, then match notices.
func (a *Aggregator) Aggregate(in Input, now time.Time) []models.Notice {
	notices := make([]models.Notice, 0, len(in.Tournaments)+len(in.Wins)+len(in.Matches))

	for _, t := range in.Tournaments {
		if !within(t.StartDate, now, a.windows.Tournament) {
			continue
		}
		notices = append(notices, models.Notice{
			ID:      fmt.Sprintf("%s:%s", models.NoticeTournament, t.ID),
			Type:    models.NoticeTournament,
			Message: fmt.Sprintf("New tournament %q is open", t.Title),
			Time:    utils.FormatRelative(t.StartDate, now),
			At:      t.StartDate,
		})
	}

	for _, m := range in.Wins {
		at, label := winTime(m, now)
		prize := m.Tournament.PlacePrize(0, a.windows.FallbackPrize)
		notices = append(notices, models.Notice{
			ID:      fmt.Sprintf("%s:%s", models.NoticeWin, m.ID),
			Type:    models.NoticeWin,
			Message: fmt.Sprintf("Congratulations! You won %s in %s", utils.FormatMoney(prize), titleOf(m)),
			Time:    label,
			At:      at,
		})
	}

	for _, m := range in.Matches {
		if m.ScheduledTime == nil || !within(*m.ScheduledTime, now, a.windows.Match) {
			continue
		}
		notices = append(notices, models.Notice{
			ID:      fmt.Sprintf("%s:%s", models.NoticeMatch, m.ID),
			Type:    models.NoticeMatch,
			Message: fmt.Sprintf("Your match in %s is ready", titleOf(m)),
			Time:    utils.FormatRelative(*m.ScheduledTime, now),
			At:      *m.ScheduledTime,
		})
	}

	return notices
}

// Aggregate runs an aggregator with DefaultWindows.
func Aggregate(in Input, now time.Time) []models.Notice {
	return NewAggregator(DefaultWindows()).Aggregate(in, now)
}

// SortByTime orders notices by distance from now, nearest first. Equal distances
// keep their aggregated order.
func SortByTime(notices []models.Notice, now time.Time) []models.Notice {
	sorted := make([]models.Notice, len(notices))
	copy(sorted, notices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return distance(sorted[i].At, now) < distance(sorted[j].At, now)
	})
	return sorted
}

func within(t, now time.Time, window time.Duration) bool {
	return t.After(now) && !t.After(now.Add(window))
}

func winTime(m models.Match, now time.Time) (time.Time, string) {
	switch {
	case m.CompletedAt != nil:
		return *m.CompletedAt, utils.FormatRelative(*m.CompletedAt, now)
	case m.ScheduledTime != nil:
		return *m.ScheduledTime, utils.FormatRelative(*m.ScheduledTime, now)
	default:
		return now, "just now"
	}
}

func titleOf(m models.Match) string {
	if title := m.TournamentTitle(); title != "" {
		return title
	}
	return "a tournament"
}

func distance(t, now time.Time) time.Duration {
	d := t.Sub(now)
	if d < 0 {
		return -d
	}
	return d
}
