package week

import "time"

// StartOfWeek returns midnight of the most recent weekStart day at or
// before t, in t's location.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// NeedsReset reports whether a week boundary has been crossed since the
// last reset. The check compares calendar dates, not weekdays: a reset
// already performed this week suppresses further triggers on the same day,
// while a last reset from any earlier week fires exactly once, even when
// both timestamps fall on the same weekday.
func (l *Ledger) NeedsReset(now time.Time, weekStart time.Weekday) bool {
	return l.LastReset.Before(StartOfWeek(now, weekStart))
}
