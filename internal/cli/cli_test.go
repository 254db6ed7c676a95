package cli_test

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tolgay/weekhours/internal/cli"
	"github.com/tolgay/weekhours/internal/store"
	"github.com/tolgay/weekhours/internal/tracker"
	"github.com/tolgay/weekhours/internal/week"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestApp(t *testing.T, now time.Time) (*cli.App, *fakeClock) {
	t.Helper()
	st, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	clock := &fakeClock{now: now}
	svc := tracker.NewService(st, clock, slog.New(slog.DiscardHandler), tracker.DefaultOptions())
	return &cli.App{Service: svc, Store: st}, clock
}

func run(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd(app)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

var wednesday = time.Date(2026, time.August, 19, 9, 0, 0, 0, time.UTC)

func TestStartStopFlow(t *testing.T) {
	app, clock := newTestApp(t, wednesday)

	out, err := run(t, app, "start")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Session started") {
		t.Fatalf("unexpected output: %q", out)
	}

	clock.now = clock.now.Add(8*time.Hour + 30*time.Minute)
	out, err = run(t, app, "stop")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Session recorded: 8h 30m") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestStopWithoutSession(t *testing.T) {
	app, _ := newTestApp(t, wednesday)

	_, err := run(t, app, "stop")
	if !errors.Is(err, week.ErrNoActiveSession) {
		t.Fatalf("err = %v, want ErrNoActiveSession", err)
	}
}

func TestLogAndStatus(t *testing.T) {
	app, _ := newTestApp(t, wednesday)

	out, err := run(t, app, "log", "--hours", "8")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Logged 8h 00m") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = run(t, app, "status")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "8h 00m / 45h 00m (18%)") {
		t.Fatalf("unexpected status: %q", out)
	}
	if !strings.Contains(out, "Remaining: 37h 00m") {
		t.Fatalf("unexpected status: %q", out)
	}
	if !strings.Contains(out, "Wed, Aug 19") {
		t.Fatalf("day row missing: %q", out)
	}
}

func TestLogBelowMinimum(t *testing.T) {
	app, _ := newTestApp(t, wednesday)

	_, err := run(t, app, "log", "--hours", "5")
	if !errors.Is(err, week.ErrBelowDailyMinimum) {
		t.Fatalf("err = %v, want ErrBelowDailyMinimum", err)
	}
}

func TestUndo(t *testing.T) {
	app, _ := newTestApp(t, wednesday)

	if _, err := run(t, app, "log", "--hours", "8"); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, app, "undo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Removed 8h 00m") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = run(t, app, "status")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0h 00m / 45h 00m") {
		t.Fatalf("total not restored: %q", out)
	}
}

func TestStatusResetsAcrossWeekBoundary(t *testing.T) {
	friday := time.Date(2026, time.August, 14, 18, 0, 0, 0, time.UTC)
	app, clock := newTestApp(t, friday)

	if _, err := run(t, app, "log", "--hours", "8"); err != nil {
		t.Fatal(err)
	}

	clock.now = time.Date(2026, time.August, 17, 8, 0, 0, 0, time.UTC)
	out, err := run(t, app, "status")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0h 00m / 45h 00m") {
		t.Fatalf("expected a fresh week: %q", out)
	}
}

func TestExportCSV(t *testing.T) {
	app, _ := newTestApp(t, wednesday)

	if _, err := run(t, app, "log", "--hours", "8"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "week.csv")
	out, err := run(t, app, "export", "--format", "csv", "--out", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Exported to "+path) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	app, _ := newTestApp(t, wednesday)

	_, err := run(t, app, "export", "--format", "xml", "--out", filepath.Join(t.TempDir(), "x"))
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
