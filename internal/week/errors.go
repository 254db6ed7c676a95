package week

import "errors"

var (
	// ErrSessionActive indicates a start while a session is already running.
	ErrSessionActive = errors.New("a work session is already active")
	// ErrNoActiveSession indicates an end with nothing to end.
	ErrNoActiveSession = errors.New("no active work session")
	// ErrSessionTooShort indicates an end under one minute; the session
	// remains active.
	ErrSessionTooShort = errors.New("session shorter than one minute")
	// ErrNothingToUndo indicates an undo against an empty ledger.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrInvalidDuration indicates a non-positive manual duration.
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrBelowDailyMinimum indicates a manual log under the daily floor.
	ErrBelowDailyMinimum = errors.New("below the daily minimum")
)
