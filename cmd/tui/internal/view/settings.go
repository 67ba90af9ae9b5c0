package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kharcha/internal/prefs"
)

// SettingsModel toggles persisted preferences. Currently that is the
// dark-mode flag; flipping it restyles the whole program immediately
// and survives restarts.
type SettingsModel struct {
	CommonModel
	prefService *prefs.Service

	darkMode bool
	loading  bool
	err      error
}

func NewSettingsModel(prefSvc *prefs.Service) SettingsModel {
	return SettingsModel{
		prefService: prefSvc,
		loading:     true,
	}
}

func (m SettingsModel) Title() string { return "Settings" }

func (m SettingsModel) ShortHelp() string {
	return "Enter/Space: toggle dark mode | Esc: back"
}

func (m SettingsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.darkMode = msg.darkMode
		UseDark(m.darkMode)

		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.darkMode = msg.darkMode
		UseDark(m.darkMode)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "enter", " ":
			return m, m.toggleCmd()
		}
	}

	return m, nil
}

func (m SettingsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading settings...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	mode := "Light"
	if m.darkMode {
		mode = "Dark"
	}

	return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf(
		"Appearance: %s\n\n(Enter or Space to toggle)",
		accentStyle(mode),
	))
}

// Messages

type settingsLoadMsg struct {
	darkMode bool
	err      error
}

func (m SettingsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		dark, err := m.prefService.DarkMode(ctx)

		return settingsLoadMsg{darkMode: dark, err: err}
	}
}

type settingsSavedMsg struct {
	darkMode bool
	err      error
}

func (m SettingsModel) toggleCmd() tea.Cmd {
	next := !m.darkMode

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.prefService.SetDarkMode(ctx, next); err != nil {
			return settingsSavedMsg{err: err}
		}

		return settingsSavedMsg{darkMode: next}
	}
}
