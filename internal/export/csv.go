package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/tolgay/weekhours/internal/week"
)

// ToCSV writes one row per recorded session of the week, grouped the way
// the ledger stores them: in day order, sessions in recording order.
func ToCSV(l week.Ledger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Day", "Start", "End", "Duration (min)", "Duration", "Day Total (min)"}); err != nil {
		return err
	}

	for _, e := range l.Entries {
		for _, s := range e.Sessions {
			row := []string{
				e.DateKey,
				s.StartTime.Local().Format(time.RFC3339),
				s.EndTime.Local().Format(time.RFC3339),
				fmt.Sprintf("%d", s.DurationMinutes),
				formatMinutes(s.DurationMinutes),
				fmt.Sprintf("%d", e.TotalMinutes),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
