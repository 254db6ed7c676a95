package tracker

import (
	"time"

	"github.com/tolgay/weekhours/internal/week"
)

// LedgerRepository is the single-slot store for the week ledger. Load
// returns nil when no prior state exists (first run, or an unreadable
// snapshot treated as absent); Save rewrites the full snapshot.
type LedgerRepository interface {
	LoadLedger() (*week.Ledger, error)
	SaveLedger(week.Ledger) error
}

// Clock supplies the current time so tests can drive it deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }
