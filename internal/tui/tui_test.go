package tui

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tolgay/weekhours/internal/store"
	"github.com/tolgay/weekhours/internal/tracker"
	"github.com/tolgay/weekhours/internal/week"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	st, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	svc := tracker.NewService(st, tracker.SystemClock(), slog.New(slog.DiscardHandler), tracker.DefaultOptions())
	return NewApp(svc, st)
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTabCyclesViews(t *testing.T) {
	a := newTestApp(t)

	for i, want := range []viewState{viewWeek, viewReports, viewSettings, viewDashboard} {
		model, _ := a.Update(tea.KeyMsg{Type: tea.KeyTab})
		a = model.(App)
		if a.activeView != want {
			t.Fatalf("after %d tabs: view = %d, want %d", i+1, a.activeView, want)
		}
	}
}

func TestNumberKeysJumpToView(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(keyMsg('3'))
	a = model.(App)
	if a.activeView != viewReports {
		t.Fatalf("view = %d, want reports", a.activeView)
	}

	model, _ = a.Update(keyMsg('1'))
	a = model.(App)
	if a.activeView != viewDashboard {
		t.Fatalf("view = %d, want dashboard", a.activeView)
	}
}

func TestWeekResetMsgSetsStatus(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(WeekResetMsg{At: time.Now()})
	a = model.(App)
	if !strings.Contains(a.status, "New week started") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestResultMessagesSetStatus(t *testing.T) {
	a := newTestApp(t)
	sess := week.Session{DurationMinutes: 510}

	model, _ := a.Update(sessionEndedMsg{session: sess})
	a = model.(App)
	if !strings.Contains(a.status, "8h 30m") {
		t.Fatalf("status = %q", a.status)
	}

	model, _ = a.Update(undoneMsg{session: week.Session{DurationMinutes: 480}})
	a = model.(App)
	if !strings.Contains(a.status, "Removed 8h 00m") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestExportPickerToggle(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(keyMsg('e'))
	a = model.(App)
	if !a.exportPicking {
		t.Fatal("expected the export picker to open")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if a.exportPicking {
		t.Fatal("expected esc to close the picker")
	}
}

func TestViewRendersAfterResize(t *testing.T) {
	a := newTestApp(t)

	if got := a.View(); got != "Loading..." {
		t.Fatalf("zero-width view = %q", got)
	}

	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = model.(App)
	out := a.View()
	if !strings.Contains(out, "weekhours") {
		t.Fatal("header missing from rendered view")
	}
	if !strings.Contains(out, "Dashboard") {
		t.Fatal("tab row missing from rendered view")
	}
}

func TestDashboardElapsedUsesSnapshotClock(t *testing.T) {
	start := time.Date(2026, time.August, 19, 9, 0, 0, 0, time.UTC)

	a := newTestApp(t)
	d := a.dashboard
	d.snap = tracker.Snapshot{
		Now:    start.Add(125 * time.Minute),
		Ledger: week.Ledger{Active: &week.ActiveSession{StartTime: start}},
	}

	// The elapsed time must come from the snapshot's clock, not the wall
	// clock, so a fake clock drives the display deterministically.
	if got := d.elapsed(); got != 125*time.Minute {
		t.Fatalf("elapsed = %v, want 2h05m", got)
	}
}

func TestDashboardProgressPanelUsesSnapshot(t *testing.T) {
	a := newTestApp(t)
	d := a.dashboard
	d.setSize(100, 30)
	d.snap = tracker.Snapshot{
		Now:      time.Date(2026, time.August, 19, 9, 0, 0, 0, time.UTC),
		Progress: week.Calculate(510, 2700),
	}

	out := d.renderProgressPanel(80)
	if !strings.Contains(out, "8h 30m") {
		t.Fatalf("panel does not show the snapshot total:\n%s", out)
	}
	if !strings.Contains(out, "36h 30m remaining") {
		t.Fatalf("panel does not show the snapshot remainder:\n%s", out)
	}
}

func TestDashboardTickRefreshesSnapshot(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.dashboard.update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick must re-snapshot the service state")
	}
	if _, ok := cmd().(snapshotMsg); !ok {
		t.Fatal("tick command did not produce a snapshot")
	}
}

func TestFriendlyError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{week.ErrSessionActive, "A session is already running"},
		{week.ErrNoActiveSession, "No session is running"},
		{week.ErrSessionTooShort, "Session under a minute — still running"},
		{week.ErrNothingToUndo, "Nothing to undo"},
		{week.ErrInvalidDuration, "Enter valid hours and minutes"},
		{week.ErrBelowDailyMinimum, "Minimum per log is 6h 00m"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, c := range cases {
		if got := friendlyError(c.err, 360); got != c.want {
			t.Fatalf("friendlyError(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                  "00:00:00",
		59 * time.Second:                   "00:00:59",
		90 * time.Minute:                   "01:30:00",
		8*time.Hour + 30*time.Minute: "08:30:00",
	}
	for d, want := range cases {
		if got := formatClock(d); got != want {
			t.Fatalf("formatClock(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		0:    "0h 00m",
		59:   "0h 59m",
		510:  "8h 30m",
		2700: "45h 00m",
	}
	for minutes, want := range cases {
		if got := formatMinutes(minutes); got != want {
			t.Fatalf("formatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
}
