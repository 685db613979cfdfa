package utils

import (
	"fmt"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * 60
)

// FormatRelative описывает target относительно now: "starting in 12 minutes", "2 hours ago".
// Разница округляется вниз до минут; target == now считается будущим.
func FormatRelative(target, now time.Time) string {
	diff := target.Sub(now)
	if diff >= 0 {
		return formatFuture(int(diff / time.Minute))
	}
	return formatPast(int(-diff / time.Minute))
}

func formatFuture(minutes int) string {
	switch {
	case minutes < minutesPerHour:
		return fmt.Sprintf("starting in %d minutes", minutes)
	case minutes == minutesPerHour:
		return "starting in 1 hour"
	case minutes < minutesPerDay:
		return fmt.Sprintf("starting in %d hours", minutes/minutesPerHour)
	default:
		return "starting in " + pluralDays(minutes/minutesPerDay)
	}
}

func formatPast(minutes int) string {
	switch {
	case minutes < minutesPerHour:
		return "just now"
	case minutes == minutesPerHour:
		return "1 hour ago"
	case minutes < minutesPerDay:
		return fmt.Sprintf("%d hours ago", minutes/minutesPerHour)
	default:
		return pluralDays(minutes/minutesPerDay) + " ago"
	}
}

func pluralDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatScheduleLabel renders a start time for listings: "Today, 8:00 PM",
// "Tomorrow, 6:00 PM" or "Oct 7, 7:00 PM", in loc.
func FormatScheduleLabel(t, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	now = now.In(loc)

	clock := t.Format("3:04 PM")
	ty, tm, td := t.Date()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	day := time.Date(ty, tm, td, 0, 0, 0, 0, loc)

	switch {
	case day.Equal(today):
		return "Today, " + clock
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow, " + clock
	default:
		return t.Format("Jan 2") + ", " + clock
	}
}

// FormatMatchDate renders a calendar date like "Oct 3, 2025".
func FormatMatchDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("Jan 2, 2006")
}
