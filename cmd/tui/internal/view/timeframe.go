package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kharcha/internal/expense"
)

var rangeOptions = []expense.RangeKind{
	expense.RangeAll,
	expense.RangeThisWeek,
	expense.RangeThisMonth,
	expense.RangeCustom,
}

// RangeSelectedMsg is emitted when the user has picked a date range.
type RangeSelectedMsg struct {
	Range expense.DateRange
}

type rangeState int

const (
	rangeStateSelect rangeState = iota
	rangeStateCustom
)

// RangePicker is a reusable component for selecting a date range.
type RangePicker struct {
	state  rangeState
	cursor int

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	err error
}

func NewRangePicker() RangePicker {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "Start Date: "

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "End Date:   "

	return RangePicker{
		state:      rangeStateSelect,
		startInput: si,
		endInput:   ei,
	}
}

func (m RangePicker) Init() tea.Cmd {
	return nil
}

func (m RangePicker) Update(msg tea.Msg) (RangePicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case rangeStateSelect:
			return m.updateSelect(keyMsg)
		case rangeStateCustom:
			return m.updateCustom(keyMsg)
		}
	}

	if m.state == rangeStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m RangePicker) updateSelect(msg tea.KeyMsg) (RangePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(rangeOptions)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		kind := rangeOptions[m.cursor]
		if kind == expense.RangeCustom {
			m.state = rangeStateCustom
			m.focusIndex = 0
			m.startInput.Focus()

			return m, textinput.Blink
		}

		return m, func() tea.Msg {
			return RangeSelectedMsg{Range: expense.DateRange{Kind: kind}}
		}
	}

	return m, nil
}

func (m RangePicker) updateCustom(msg tea.KeyMsg) (RangePicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
			return m, textinput.Blink
		}

		m.endInput.Focus()

		return m, textinput.Blink

	case "enter":
		start, err := time.Parse("2006-01-02", m.startInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid start date (YYYY-MM-DD)")
			return m, nil
		}

		end, err := time.Parse("2006-01-02", m.endInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid end date (YYYY-MM-DD)")
			return m, nil
		}

		if end.Before(start) {
			m.err = fmt.Errorf("end date before start date")
			return m, nil
		}

		m.err = nil

		return m, func() tea.Msg {
			return RangeSelectedMsg{Range: expense.DateRange{
				Kind:  expense.RangeCustom,
				Start: start,
				End:   end,
			}}
		}

	case "esc":
		m.state = rangeStateSelect
		m.err = nil

		return m, nil
	}

	return m.updateInputs(msg)
}

func (m RangePicker) updateInputs(msg tea.Msg) (RangePicker, tea.Cmd) {
	var cmds []tea.Cmd
	var c tea.Cmd

	m.startInput, c = m.startInput.Update(msg)
	cmds = append(cmds, c)
	m.endInput, c = m.endInput.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

func (m RangePicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = "\n\n" + errorStyle(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == rangeStateCustom {
		return fmt.Sprintf(
			"Enter Custom Range:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)%s",
			m.startInput.View(),
			m.endInput.View(),
			errStr,
		)
	}

	s := "Select Timeframe:\n\n"

	for i, kind := range rangeOptions {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, kind.String())
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// IsSelecting returns true if the picker is in the selection state (not custom input).
func (m RangePicker) IsSelecting() bool {
	return m.state == rangeStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *RangePicker) Reset() {
	m.state = rangeStateSelect
	m.cursor = 0
	m.err = nil
	m.startInput.SetValue("")
	m.endInput.SetValue("")
}
