package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/tolgay/weekhours/internal/tracker"
	"github.com/tolgay/weekhours/internal/week"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewWeek
	viewReports
	viewSettings
)

var viewNames = []string{"Dashboard", "Week", "Reports", "Settings"}

// --- Messages ---

// WeekResetMsg is delivered from the reset scheduler goroutine via
// Program.Send when a new week has started.
type WeekResetMsg struct {
	At time.Time
}

type snapshotMsg struct {
	snap tracker.Snapshot
}

type sessionStartedMsg struct{}

type sessionEndedMsg struct {
	session week.Session
}

type loggedMsg struct {
	session week.Session
}

type undoneMsg struct {
	session week.Session
}

type settingsSavedMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// friendlyError maps domain rejections to the toasts the views show.
func friendlyError(err error, dailyMinimum int) string {
	switch {
	case errors.Is(err, week.ErrSessionActive):
		return "A session is already running"
	case errors.Is(err, week.ErrNoActiveSession):
		return "No session is running"
	case errors.Is(err, week.ErrSessionTooShort):
		return "Session under a minute — still running"
	case errors.Is(err, week.ErrNothingToUndo):
		return "Nothing to undo"
	case errors.Is(err, week.ErrInvalidDuration):
		return "Enter valid hours and minutes"
	case errors.Is(err, week.ErrBelowDailyMinimum):
		return fmt.Sprintf("Minimum per log is %s", formatMinutes(dailyMinimum))
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
