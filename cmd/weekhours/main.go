package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tolgay/weekhours/internal/cli"
	"github.com/tolgay/weekhours/internal/config"
	"github.com/tolgay/weekhours/internal/store"
	"github.com/tolgay/weekhours/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolving database path: %w", err)
		}
	}

	st, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	// Live rules come from the settings table; the config file only
	// supplies fallbacks for a missing row.
	opts := tracker.Options{
		TargetMinutes:       st.GetSettingInt("weekly_target", cfg.Week.TargetMinutes),
		DailyMinimumMinutes: st.GetSettingInt("daily_minimum", cfg.Week.DailyMinimumMinutes),
		WeekStart:           st.GetWeekStart(),
	}
	svc := tracker.NewService(st, tracker.SystemClock(), logger, opts)

	app := &cli.App{Service: svc, Store: st}
	return cli.NewRootCmd(app).Execute()
}
