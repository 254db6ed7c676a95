package tracker

import (
	"context"
	"time"
)

// DefaultCheckInterval is how often the scheduler re-runs the reset check.
const DefaultCheckInterval = time.Minute

// Scheduler drives the periodic week-reset check: once immediately, then on
// every tick until the context is cancelled.
type Scheduler struct {
	svc      *Service
	interval time.Duration
	onReset  func(at time.Time)
}

// NewScheduler builds a scheduler around svc. onReset may be nil; when set
// it is invoked after each reset that actually fired.
func NewScheduler(svc *Service, interval time.Duration, onReset func(at time.Time)) *Scheduler {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Scheduler{svc: svc, interval: interval, onReset: onReset}
}

// Run blocks until ctx is cancelled. The ticker is stopped on return so no
// callbacks leak past teardown.
func (s *Scheduler) Run(ctx context.Context) {
	s.check()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check()
		}
	}
}

func (s *Scheduler) check() {
	didReset, err := s.svc.CheckReset()
	if err != nil {
		s.svc.logger.Warn("reset check failed", "error", err)
		return
	}
	if didReset && s.onReset != nil {
		s.onReset(s.svc.clock.Now())
	}
}
