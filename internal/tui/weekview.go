package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tolgay/weekhours/internal/tracker"
)

// weekModel lists every day of the current week with its sessions.
type weekModel struct {
	svc    *tracker.Service
	width  int
	height int

	snap tracker.Snapshot
}

func newWeekModel(svc *tracker.Service) weekModel {
	return weekModel{svc: svc}
}

func (m *weekModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m weekModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return snapshotMsg{snap: snap}
	}
}

func (m weekModel) update(msg tea.Msg) (weekModel, tea.Cmd) {
	if msg, ok := msg.(snapshotMsg); ok {
		m.snap = msg.snap
	}
	return m, nil
}

func (m weekModel) view() string {
	w := m.width - 4

	title := titleStyle.Render("Week")
	since := mutedStyle.Render(fmt.Sprintf("since %s", m.snap.Ledger.LastReset.Local().Format("Mon, Jan 2")))
	total := highlightStyle.Render(formatMinutes(m.snap.Ledger.TotalMinutes))
	header := fmt.Sprintf("%s  %s  %s", title, total, since)

	if len(m.snap.Ledger.Entries) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, header, mutedStyle.Render("No entries this week")),
		)
	}

	var rows []string
	rows = append(rows, header)
	for _, e := range m.snap.Ledger.Entries {
		rows = append(rows, "")
		dayHeader := fmt.Sprintf("%s  %s",
			titleStyle.Render(e.DisplayDate),
			highlightStyle.Render(formatMinutes(e.TotalMinutes)),
		)
		rows = append(rows, dayHeader)
		for _, s := range e.Sessions {
			rows = append(rows, "  "+renderSessionRow(s))
		}
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
