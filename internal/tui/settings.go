package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/tolgay/weekhours/internal/store"
	"github.com/tolgay/weekhours/internal/tracker"
)

type settingsModel struct {
	svc    *tracker.Service
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	weeklyTarget *string
	dailyMinimum *string
	weekStart    *string
}

func newSettingsModel(svc *tracker.Service, st *store.Store) settingsModel {
	wt, dm, ws := "", "", ""
	return settingsModel{
		svc:          svc,
		store:        st,
		weeklyTarget: &wt,
		dailyMinimum: &dm,
		weekStart:    &ws,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.weeklyTarget = minutesToHours(s.store.GetSettingInt("weekly_target", s.svc.TargetMinutes()))
	*s.dailyMinimum = minutesToHours(s.store.GetSettingInt("daily_minimum", s.svc.DailyMinimumMinutes()))
	*s.weekStart = "monday"
	if v, err := s.store.GetSetting("week_start"); err == nil && v == "sunday" {
		*s.weekStart = "sunday"
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Weekly target (hours)").Value(s.weeklyTarget),
			huh.NewInput().Title("Daily minimum per log (hours)").Value(s.dailyMinimum),
			huh.NewSelect[string]().Title("Week starts on").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Sunday", "sunday"),
				).Value(s.weekStart),
		).Title("Tracking"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.saveSettings()
		return s, tea.Batch(s.refresh(), func() tea.Msg { return settingsSavedMsg{} })
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	target := hoursToMinutes(*s.weeklyTarget, s.svc.TargetMinutes())
	minimum := hoursToMinutes(*s.dailyMinimum, s.svc.DailyMinimumMinutes())

	s.store.SetSetting("weekly_target", strconv.Itoa(target))
	s.store.SetSetting("daily_minimum", strconv.Itoa(minimum))
	s.store.SetSetting("week_start", *s.weekStart)

	s.svc.SetOptions(tracker.Options{
		TargetMinutes:       target,
		DailyMinimumMinutes: minimum,
		WeekStart:           s.store.GetWeekStart(),
	})
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Settings"), "", s.form.View()),
		)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(20).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case "weekly_target", "daily_minimum":
		if minutes, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%.1f hours", float64(minutes)/60)
		}
	}
	return v
}

func minutesToHours(minutes int) string {
	return strconv.FormatFloat(float64(minutes)/60, 'f', -1, 64)
}

func hoursToMinutes(s string, fallback int) int {
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil || hours <= 0 {
		return fallback
	}
	return int(hours * 60)
}
