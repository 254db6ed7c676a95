package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tolgay/weekhours/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export this week's sessions to CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Service.CheckReset(); err != nil {
				return err
			}
			snap, err := app.Service.Snapshot()
			if err != nil {
				return err
			}

			if out == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("finding home directory: %w", err)
				}
				name := fmt.Sprintf("weekhours-export-%s.%s", time.Now().Format("2006-01-02"), format)
				out = filepath.Join(home, name)
			}

			switch format {
			case "csv":
				err = export.ToCSV(snap.Ledger, out)
			case "json":
				err = export.ToJSON(snap.Ledger, out)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "export format: csv or json")
	cmd.Flags().StringVar(&out, "out", "", "output path (default ~/weekhours-export-DATE.FORMAT)")
	return cmd
}
