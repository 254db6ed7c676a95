package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tolgay/weekhours/internal/tracker"
	"github.com/tolgay/weekhours/internal/week"
)

// reportsModel draws hours per weekday as a bar chart.
type reportsModel struct {
	svc    *tracker.Service
	width  int
	height int

	snap  tracker.Snapshot
	chart barchart.Model
}

func newReportsModel(svc *tracker.Service) reportsModel {
	return reportsModel{
		svc:   svc,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := r.svc.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return snapshotMsg{snap: snap}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	if msg, ok := msg.(snapshotMsg); ok {
		r.snap = msg.snap
		r.buildChart()
	}
	return r, nil
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	totals := make(map[string]int, len(r.snap.Ledger.Entries))
	for _, e := range r.snap.Ledger.Entries {
		totals[e.DateKey] = e.TotalMinutes
	}

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	emptyStyle := lipgloss.NewStyle().Foreground(colorSubtle)

	start := week.StartOfWeek(r.snap.Now, r.svc.WeekStart())
	var bars []barchart.BarData
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		hours := float64(totals[week.DateKey(day)]) / 60.0

		style := barStyle
		if hours == 0 {
			style = emptyStyle
		}
		bars = append(bars, barchart.BarData{
			Label: day.Format("Mon"),
			Values: []barchart.BarValue{
				{Name: day.Format("Mon"), Value: hours, Style: style},
			},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	start := week.StartOfWeek(r.snap.Now, r.svc.WeekStart())
	end := start.AddDate(0, 0, 6)
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s — %s", start.Format("Jan 02"), end.Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ", dateLabel,
	)

	pace := mutedStyle.Render(fmt.Sprintf("  Daily pace for target: %s",
		formatMinutes(r.svc.TargetMinutes()/7)))

	table := r.renderDayTable(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", pace, "", table,
		),
	)
}

func (r reportsModel) renderDayTable(w int) string {
	if len(r.snap.Ledger.Entries) == 0 {
		return mutedStyle.Render("  No data this week")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-14s %10s %10s", "Day", "Duration", "Sessions")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", minInt(w-6, 38))))
	for _, e := range r.snap.Ledger.Entries {
		rows = append(rows, fmt.Sprintf("  %-14s %10s %10d",
			e.DisplayDate, formatMinutes(e.TotalMinutes), len(e.Sessions),
		))
	}
	return strings.Join(rows, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
