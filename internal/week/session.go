package week

import (
	"time"

	"github.com/google/uuid"
)

// StartWork opens the active session. At most one session may be active at
// a time; a second start is rejected without touching the ledger.
func (l *Ledger) StartWork(now time.Time) error {
	if l.Active != nil {
		return ErrSessionActive
	}
	l.Active = &ActiveSession{StartTime: now}
	return nil
}

// EndWork finalizes the active session into a recorded Session under the
// calendar day of now. Sessions shorter than one minute are rejected and
// the session stays active so the caller can try again later.
func (l *Ledger) EndWork(now time.Time) (Session, error) {
	if l.Active == nil {
		return Session{}, ErrNoActiveSession
	}
	minutes := minutesBetween(l.Active.StartTime, now)
	if minutes < MinSessionMinutes {
		return Session{}, ErrSessionTooShort
	}
	s := Session{
		ID:              uuid.NewString(),
		StartTime:       l.Active.StartTime,
		EndTime:         now,
		DurationMinutes: minutes,
	}
	l.Active = nil
	l.RecordSession(s, now)
	return s, nil
}

// ElapsedMinutes reports how long the active session has been running, or
// zero when idle. Purely derived from the stored start time.
func (l *Ledger) ElapsedMinutes(now time.Time) int {
	if l.Active == nil {
		return 0
	}
	return minutesBetween(l.Active.StartTime, now)
}

// EffectiveTotal is the recorded weekly total plus the live elapsed minutes
// of the active session. Display-time only; the ledger total itself never
// includes unfinalized time.
func (l *Ledger) EffectiveTotal(now time.Time) int {
	return l.TotalMinutes + l.ElapsedMinutes(now)
}

func minutesBetween(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
