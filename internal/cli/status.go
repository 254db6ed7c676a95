package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show this week's totals and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Service.CheckReset(); err != nil {
				return err
			}
			return printStatus(cmd, app)
		},
	}
}

func printStatus(cmd *cobra.Command, app *App) error {
	snap, err := app.Service.Snapshot()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Week of %s\n", snap.Ledger.LastReset.Local().Format("Mon, Jan 2 2006"))
	fmt.Fprintf(out, "Total:     %s / %s (%.0f%%)\n",
		formatMinutes(snap.Progress.TotalMinutes),
		formatMinutes(snap.Progress.TargetMinutes),
		snap.Progress.Percent,
	)
	if snap.Progress.Complete {
		fmt.Fprintf(out, "Target reached")
		if snap.Progress.OverageMinutes > 0 {
			fmt.Fprintf(out, " (+%s over)", formatMinutes(snap.Progress.OverageMinutes))
		}
		fmt.Fprintln(out)
	} else {
		fmt.Fprintf(out, "Remaining: %s\n", formatMinutes(snap.Progress.RemainingMinutes))
	}

	if snap.Ledger.Active != nil {
		fmt.Fprintf(out, "Active session since %s (%s)\n",
			snap.Ledger.Active.StartTime.Local().Format("15:04"),
			formatMinutes(snap.ElapsedMinutes),
		)
	}

	if len(snap.Ledger.Entries) > 0 {
		fmt.Fprintln(out)
		for _, e := range snap.Ledger.Entries {
			fmt.Fprintf(out, "  %-14s %s\n", e.DisplayDate, formatMinutes(e.TotalMinutes))
		}
	}
	return nil
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
