package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var hours, minutes string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log hours worked today without a timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Service.CheckReset(); err != nil {
				return err
			}
			sess, err := app.Service.LogManualHours(hours, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for today.\n", formatMinutes(sess.DurationMinutes))
			return nil
		},
	}

	cmd.Flags().StringVar(&hours, "hours", "0", "hours worked")
	cmd.Flags().StringVar(&minutes, "minutes", "0", "additional minutes worked")
	return cmd
}
