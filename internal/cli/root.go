// Package cli wires the cobra command tree. The root command opens the TUI
// on an interactive terminal and prints a status summary otherwise; the
// subcommands cover scripted use.
package cli

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tolgay/weekhours/internal/store"
	"github.com/tolgay/weekhours/internal/tracker"
	"github.com/tolgay/weekhours/internal/tui"
)

// App carries the wired dependencies into the commands.
type App struct {
	Service *tracker.Service
	Store   *store.Store
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "weekhours",
		Short:        "Track weekly work hours against a fixed target",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Service.CheckReset(); err != nil {
				return err
			}
			if isInteractive() {
				return runTUI(app)
			}
			return printStatus(cmd, app)
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newLogCmd(app),
		newUndoCmd(app),
		newStatusCmd(app),
		newExportCmd(app),
	)
	return root
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func runTUI(app *App) error {
	p := tea.NewProgram(tui.NewApp(app.Service, app.Store), tea.WithAltScreen())

	// The reset scheduler runs beside the event loop and posts week-reset
	// events into it; cancelling the context stops the ticker on exit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched := tracker.NewScheduler(app.Service, tracker.DefaultCheckInterval, func(at time.Time) {
		p.Send(tui.WeekResetMsg{At: at})
	})
	go sched.Run(ctx)

	_, err := p.Run()
	return err
}
