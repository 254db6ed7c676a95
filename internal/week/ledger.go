// Package week implements the weekly time-accounting core: the ledger of
// per-day entries, the active-session state machine, week-boundary reset
// math and progress derivation. The package holds no clock and performs no
// I/O; callers pass "now" explicitly.
package week

import (
	"time"

	"github.com/google/uuid"
)

// Durations throughout the package are whole minutes.
const (
	DefaultWeeklyTargetMinutes = 2700 // 45 hours
	DefaultDailyMinimumMinutes = 360  // 6 hours
	MinSessionMinutes          = 1
)

const (
	DateKeyLayout     = "2006-01-02"
	DisplayDateLayout = "Mon, Jan 2"
)

// Session is a finalized work period. Immutable once recorded.
type Session struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
}

// DayEntry aggregates the sessions of one calendar day. TotalMinutes always
// equals the sum of the contained sessions' durations.
type DayEntry struct {
	DateKey      string    `json:"dateKey"`
	DisplayDate  string    `json:"displayDate"`
	Sessions     []Session `json:"sessions"`
	TotalMinutes int       `json:"totalMinutes"`
}

// ActiveSession is an in-progress work period: a start time and nothing
// else. Elapsed time is derived from it on demand, never stored.
type ActiveSession struct {
	StartTime time.Time `json:"startTime"`
}

// Ledger is the full record of one week. It owns its entries and the
// optional active session; persistence is always a whole-value snapshot.
// Invariant: TotalMinutes == sum of Entries[*].TotalMinutes. The active
// session is never folded into TotalMinutes until finalized.
type Ledger struct {
	TotalMinutes int            `json:"totalMinutes"`
	Entries      []DayEntry     `json:"entries"`
	LastReset    time.Time      `json:"lastResetDate"`
	Active       *ActiveSession `json:"activeSession,omitempty"`
}

// NewLedger returns an empty ledger whose week began at now.
func NewLedger(now time.Time) Ledger {
	return Ledger{LastReset: now}
}

// DateKey returns the calendar-day identity for t.
func DateKey(t time.Time) string { return t.Format(DateKeyLayout) }

// RecordSession appends s to the entry for the day containing occursOn,
// creating the entry if that day has none yet. Entries stay in the order
// their days first occurred; day keys are never duplicated.
func (l *Ledger) RecordSession(s Session, occursOn time.Time) {
	e := l.entryFor(occursOn)
	e.Sessions = append(e.Sessions, s)
	e.TotalMinutes += s.DurationMinutes
	l.TotalMinutes += s.DurationMinutes
}

// RecordManual logs a bare duration with no real start/end; both timestamps
// are set to now as placeholders.
func (l *Ledger) RecordManual(durationMinutes int, now time.Time) (Session, error) {
	if durationMinutes <= 0 {
		return Session{}, ErrInvalidDuration
	}
	s := Session{
		ID:              uuid.NewString(),
		StartTime:       now,
		EndTime:         now,
		DurationMinutes: durationMinutes,
	}
	l.RecordSession(s, now)
	return s, nil
}

// UndoLast removes the most recently recorded session and returns it. The
// entry holding it is dropped when it becomes empty.
func (l *Ledger) UndoLast() (Session, error) {
	if len(l.Entries) == 0 {
		return Session{}, ErrNothingToUndo
	}
	last := &l.Entries[len(l.Entries)-1]
	s := last.Sessions[len(last.Sessions)-1]
	last.Sessions = last.Sessions[:len(last.Sessions)-1]
	last.TotalMinutes -= s.DurationMinutes
	l.TotalMinutes -= s.DurationMinutes
	if len(last.Sessions) == 0 {
		l.Entries = l.Entries[:len(l.Entries)-1]
	}
	return s, nil
}

// Reset replaces the ledger with an empty one starting at now. An active
// session existing at reset time is discarded, not carried over.
func (l *Ledger) Reset(now time.Time) {
	*l = Ledger{LastReset: now}
}

func (l *Ledger) entryFor(occursOn time.Time) *DayEntry {
	key := DateKey(occursOn)
	// Most records land on the newest day, so scan from the end.
	for i := len(l.Entries) - 1; i >= 0; i-- {
		if l.Entries[i].DateKey == key {
			return &l.Entries[i]
		}
	}
	l.Entries = append(l.Entries, DayEntry{
		DateKey:     key,
		DisplayDate: occursOn.Format(DisplayDateLayout),
	})
	return &l.Entries[len(l.Entries)-1]
}
