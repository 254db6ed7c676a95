package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Service.CheckReset(); err != nil {
				return err
			}
			if err := app.Service.StartWork(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session started.")
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "End the running work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Service.CheckReset(); err != nil {
				return err
			}
			sess, err := app.Service.EndWork()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session recorded: %s (%s – %s)\n",
				formatMinutes(sess.DurationMinutes),
				sess.StartTime.Local().Format("15:04"),
				sess.EndTime.Local().Format("15:04"),
			)
			return nil
		},
	}
}

func newUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Remove the most recently recorded entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Service.CheckReset(); err != nil {
				return err
			}
			sess, err := app.Service.UndoLast()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", formatMinutes(sess.DurationMinutes))
			return nil
		},
	}
}
