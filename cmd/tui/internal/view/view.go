package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct{}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// RefreshMsg tells a view that stored data changed somewhere and its
// copy is stale. The program sends it whenever a service reports a
// mutation.
type RefreshMsg struct{}
