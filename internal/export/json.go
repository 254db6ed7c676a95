package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tolgay/weekhours/internal/week"
)

type jsonExport struct {
	ExportedAt   string    `json:"exported_at"`
	WeekOf       string    `json:"week_of"`
	TotalMinutes int       `json:"total_minutes"`
	Days         []jsonDay `json:"days"`
}

type jsonDay struct {
	Date         string        `json:"date"`
	Label        string        `json:"label"`
	TotalMinutes int           `json:"total_minutes"`
	Sessions     []jsonSession `json:"sessions"`
}

type jsonSession struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DurationMin int    `json:"duration_minutes"`
	Duration    string `json:"duration"`
}

// ToJSON writes the week as a day-grouped document.
func ToJSON(l week.Ledger, path string) error {
	doc := jsonExport{
		ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		WeekOf:       l.LastReset.Local().Format("2006-01-02"),
		TotalMinutes: l.TotalMinutes,
	}

	for _, e := range l.Entries {
		day := jsonDay{
			Date:         e.DateKey,
			Label:        e.DisplayDate,
			TotalMinutes: e.TotalMinutes,
		}
		for _, s := range e.Sessions {
			day.Sessions = append(day.Sessions, jsonSession{
				ID:          s.ID,
				StartTime:   s.StartTime.Local().Format(time.RFC3339),
				EndTime:     s.EndTime.Local().Format(time.RFC3339),
				DurationMin: s.DurationMinutes,
				Duration:    formatMinutes(s.DurationMinutes),
			})
		}
		doc.Days = append(doc.Days, day)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
