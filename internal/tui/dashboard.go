package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/tolgay/weekhours/internal/tracker"
	"github.com/tolgay/weekhours/internal/week"
)

type dashboardModel struct {
	svc    *tracker.Service
	width  int
	height int

	snap tracker.Snapshot
	bar  progress.Model

	formActive   bool
	form         *huh.Form
	hoursInput   *string
	minutesInput *string
}

func newDashboardModel(svc *tracker.Service) dashboardModel {
	h, m := "", ""
	return dashboardModel{
		svc:          svc,
		bar:          progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		hoursInput:   &h,
		minutesInput: &m,
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.refresh()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.bar.Width = w - 14
}

func (d dashboardModel) isRunning() bool {
	return d.snap.Ledger.Active != nil
}

func (d dashboardModel) elapsed() time.Duration {
	if d.snap.Ledger.Active == nil {
		return 0
	}
	return d.snap.Now.Sub(d.snap.Ledger.Active.StartTime)
}

func (d dashboardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := d.svc.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return snapshotMsg{snap: snap}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case snapshotMsg:
		d.snap = msg.snap
		return d, nil

	case tickMsg:
		// Re-snapshot every second so the live elapsed time and progress
		// advance on the service's clock, not the wall clock.
		return d, d.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			return d, d.startWork()
		case key.Matches(msg, keys.Stop):
			return d, d.endWork()
		case key.Matches(msg, keys.Undo):
			return d, d.undoLast()
		case key.Matches(msg, keys.Log):
			return d.showLogForm()
		}
	}
	return d, nil
}

func (d dashboardModel) startWork() tea.Cmd {
	return func() tea.Msg {
		if err := d.svc.StartWork(); err != nil {
			return statusMsg{text: friendlyError(err, d.svc.DailyMinimumMinutes()), isError: true}
		}
		return sessionStartedMsg{}
	}
}

func (d dashboardModel) endWork() tea.Cmd {
	return func() tea.Msg {
		sess, err := d.svc.EndWork()
		if err != nil {
			return statusMsg{text: friendlyError(err, d.svc.DailyMinimumMinutes()), isError: true}
		}
		return sessionEndedMsg{session: sess}
	}
}

func (d dashboardModel) undoLast() tea.Cmd {
	return func() tea.Msg {
		sess, err := d.svc.UndoLast()
		if err != nil {
			return statusMsg{text: friendlyError(err, d.svc.DailyMinimumMinutes()), isError: true}
		}
		return undoneMsg{session: sess}
	}
}

func (d dashboardModel) showLogForm() (dashboardModel, tea.Cmd) {
	*d.hoursInput = ""
	*d.minutesInput = ""

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Hours").Value(d.hoursInput),
			huh.NewInput().Title("Minutes").Value(d.minutesInput),
		).Title("Log hours for today"),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		hours, minutes := *d.hoursInput, *d.minutesInput
		d.form = nil
		return d, func() tea.Msg {
			sess, err := d.svc.LogManualHours(hours, minutes)
			if err != nil {
				return statusMsg{text: friendlyError(err, d.svc.DailyMinimumMinutes()), isError: true}
			}
			return loggedMsg{session: sess}
		}
	}

	return d, cmd
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	if d.formActive && d.form != nil {
		return activePanelStyle.Width(contentWidth).Render(d.form.View())
	}

	timerPanel := d.renderTimerPanel(contentWidth)
	progressPanel := d.renderProgressPanel(contentWidth)
	todayPanel := d.renderTodayPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, timerPanel, progressPanel, todayPanel)
}

func (d dashboardModel) renderTimerPanel(w int) string {
	if d.isRunning() {
		elapsed := d.elapsed()
		content := lipgloss.JoinVertical(lipgloss.Center,
			timerRunningStyle.Width(w-6).Render(formatClock(elapsed)),
			successStyle.Render("●  WORKING"),
			mutedStyle.Render(fmt.Sprintf("since %s", d.snap.Ledger.Active.StartTime.Local().Format("15:04"))),
		)
		return activePanelStyle.Width(w).Render(content)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		timerIdleStyle.Width(w-6).Render("00:00:00"),
		mutedStyle.Render("■  IDLE"),
		mutedStyle.Render("Press s to start working, l to log hours"),
	)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderProgressPanel(w int) string {
	prog := d.snap.Progress

	title := titleStyle.Render("This week")
	total := highlightStyle.Render(formatMinutes(prog.TotalMinutes))
	target := mutedStyle.Render(fmt.Sprintf("of %s", formatMinutes(prog.TargetMinutes)))
	header := fmt.Sprintf("%s  %s %s", title, total, target)

	bar := d.bar.ViewAs(prog.Percent / 100)

	var footer string
	if prog.Complete {
		footer = successStyle.Render("✔ Target reached")
		if prog.OverageMinutes > 0 {
			footer += warningStyle.Render(fmt.Sprintf("  +%s over", formatMinutes(prog.OverageMinutes)))
		}
	} else {
		footer = mutedStyle.Render(fmt.Sprintf("%s remaining  ·  %.0f%%", formatMinutes(prog.RemainingMinutes), prog.Percent))
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", bar, "", footer),
	)
}

func (d dashboardModel) renderTodayPanel(w int) string {
	title := titleStyle.Render("Today")

	todayKey := week.DateKey(d.snap.Now)
	var today *week.DayEntry
	for i := range d.snap.Ledger.Entries {
		if d.snap.Ledger.Entries[i].DateKey == todayKey {
			today = &d.snap.Ledger.Entries[i]
		}
	}

	if today == nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("No entries yet today")),
		)
	}

	var rows []string
	rows = append(rows, fmt.Sprintf("%s  %s", title, highlightStyle.Render(formatMinutes(today.TotalMinutes))))
	for _, s := range today.Sessions {
		rows = append(rows, "  "+renderSessionRow(s))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func renderSessionRow(s week.Session) string {
	if s.StartTime.Equal(s.EndTime) {
		return fmt.Sprintf("✎ manual          %s", formatMinutes(s.DurationMinutes))
	}
	return fmt.Sprintf("✓ %s – %s   %s",
		s.StartTime.Local().Format("15:04"),
		s.EndTime.Local().Format("15:04"),
		formatMinutes(s.DurationMinutes),
	)
}
