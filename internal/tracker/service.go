// Package tracker is the application service over the week domain: it
// loads the ledger snapshot, applies one mutation, and saves the whole
// snapshot back. All time comes from an injected Clock and all storage
// goes through the LedgerRepository, so the service itself holds no state
// between calls.
package tracker

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tolgay/weekhours/internal/week"
)

// Options configures the tracking rules.
type Options struct {
	TargetMinutes       int
	DailyMinimumMinutes int
	WeekStart           time.Weekday
}

// DefaultOptions returns the stock rules: 45h weekly target, 6h daily
// minimum per manual log, weeks starting Monday.
func DefaultOptions() Options {
	return Options{
		TargetMinutes:       week.DefaultWeeklyTargetMinutes,
		DailyMinimumMinutes: week.DefaultDailyMinimumMinutes,
		WeekStart:           time.Monday,
	}
}

// Service coordinates ledger mutations against the repository. Each
// operation is a load-mutate-save of the whole snapshot, so mu serializes
// them: bubbletea runs every command in its own goroutine and the reset
// scheduler is another one, and an interleaved load/save would lose the
// earlier write.
type Service struct {
	mu     sync.Mutex
	repo   LedgerRepository
	clock  Clock
	logger *slog.Logger
	opts   Options
}

// NewService wires a tracker service. A zero Options falls back to
// DefaultOptions; a nil logger falls back to slog.Default.
func NewService(repo LedgerRepository, clock Clock, logger *slog.Logger, opts Options) *Service {
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	if opts.TargetMinutes <= 0 {
		opts.TargetMinutes = week.DefaultWeeklyTargetMinutes
	}
	if opts.DailyMinimumMinutes <= 0 {
		opts.DailyMinimumMinutes = week.DefaultDailyMinimumMinutes
	}
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, clock: clock, logger: logger, opts: opts}
}

// Snapshot is the read model handed to presentation: the ledger plus the
// display-time derivations.
type Snapshot struct {
	Ledger         week.Ledger
	Progress       week.Progress
	ElapsedMinutes int
	Now            time.Time
}

// Snapshot loads the current state and derives progress, counting the live
// session's elapsed time toward the displayed total.
func (s *Service) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load()
	if err != nil {
		return Snapshot{}, err
	}
	now := s.clock.Now()
	return Snapshot{
		Ledger:         l,
		Progress:       week.Calculate(l.EffectiveTotal(now), s.opts.TargetMinutes),
		ElapsedMinutes: l.ElapsedMinutes(now),
		Now:            now,
	}, nil
}

// StartWork opens a work session. Rejected with week.ErrSessionActive when
// one is already running.
func (s *Service) StartWork() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load()
	if err != nil {
		return err
	}
	now := s.clock.Now()
	if err := l.StartWork(now); err != nil {
		return err
	}
	if err := s.save(l); err != nil {
		return err
	}
	s.logger.Info("work session started", "start", now)
	return nil
}

// EndWork finalizes the running session into the ledger. Sub-one-minute
// sessions are rejected with week.ErrSessionTooShort and stay active.
func (s *Service) EndWork() (week.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load()
	if err != nil {
		return week.Session{}, err
	}
	sess, err := l.EndWork(s.clock.Now())
	if err != nil {
		return week.Session{}, err
	}
	if err := s.save(l); err != nil {
		return week.Session{}, err
	}
	s.logger.Info("work session recorded",
		"minutes", sess.DurationMinutes, "day", week.DateKey(sess.EndTime))
	return sess, nil
}

// LogManualHours records a manual duration for today. Inputs are free-form
// strings; fractional hours ("7.5") are accepted and anything unparseable
// counts as zero. The combined total is floored to whole minutes. A
// non-positive total is rejected with week.ErrInvalidDuration, and a total
// under the daily minimum with week.ErrBelowDailyMinimum. The minimum
// applies to this single log action, not to the accumulated day total.
func (s *Service) LogManualHours(hoursInput, minutesInput string) (week.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hours := parseNonNegative(hoursInput)
	minutes := parseNonNegative(minutesInput)
	total := int(hours*60 + minutes)
	if total <= 0 {
		return week.Session{}, week.ErrInvalidDuration
	}
	if total < s.opts.DailyMinimumMinutes {
		return week.Session{}, week.ErrBelowDailyMinimum
	}

	l, err := s.load()
	if err != nil {
		return week.Session{}, err
	}
	sess, err := l.RecordManual(total, s.clock.Now())
	if err != nil {
		return week.Session{}, err
	}
	if err := s.save(l); err != nil {
		return week.Session{}, err
	}
	s.logger.Info("manual hours logged", "minutes", total, "day", week.DateKey(sess.EndTime))
	return sess, nil
}

// UndoLast removes the most recently recorded session.
func (s *Service) UndoLast() (week.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load()
	if err != nil {
		return week.Session{}, err
	}
	sess, err := l.UndoLast()
	if err != nil {
		return week.Session{}, err
	}
	if err := s.save(l); err != nil {
		return week.Session{}, err
	}
	s.logger.Info("last entry undone", "minutes", sess.DurationMinutes)
	return sess, nil
}

// CheckReset performs the edge-triggered week-boundary check and reports
// whether a reset happened. Safe to call on every tick: once the reset has
// run, further calls within the same week are no-ops.
func (s *Service) CheckReset() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load()
	if err != nil {
		return false, err
	}
	now := s.clock.Now()
	if !l.NeedsReset(now, s.opts.WeekStart) {
		return false, nil
	}
	if l.Active != nil {
		s.logger.Warn("discarding active session at week reset", "start", l.Active.StartTime)
	}
	l.Reset(now)
	if err := s.save(l); err != nil {
		return false, err
	}
	s.logger.Info("new week started", "at", now)
	return true, nil
}

// DailyMinimumMinutes exposes the configured floor for presentation.
func (s *Service) DailyMinimumMinutes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.DailyMinimumMinutes
}

// TargetMinutes exposes the configured weekly target for presentation.
func (s *Service) TargetMinutes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.TargetMinutes
}

// WeekStart exposes the configured first day of the week.
func (s *Service) WeekStart() time.Weekday {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.WeekStart
}

// SetOptions swaps the tracking rules after a settings edit.
func (s *Service) SetOptions(opts Options) {
	if opts.TargetMinutes <= 0 {
		opts.TargetMinutes = week.DefaultWeeklyTargetMinutes
	}
	if opts.DailyMinimumMinutes <= 0 {
		opts.DailyMinimumMinutes = week.DefaultDailyMinimumMinutes
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts
}

func (s *Service) load() (week.Ledger, error) {
	l, err := s.repo.LoadLedger()
	if err != nil {
		return week.Ledger{}, fmt.Errorf("load ledger: %w", err)
	}
	if l == nil {
		// First run, or unreadable prior state: start fresh.
		return week.NewLedger(s.clock.Now()), nil
	}
	return *l, nil
}

func (s *Service) save(l week.Ledger) error {
	if err := s.repo.SaveLedger(l); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

func parseNonNegative(input string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
