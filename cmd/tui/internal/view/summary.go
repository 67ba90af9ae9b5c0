package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kharcha/internal/expense"
)

// summaryRanges are the quick timeframes the breakdown cycles through.
var summaryRanges = []expense.RangeKind{
	expense.RangeAll,
	expense.RangeThisWeek,
	expense.RangeThisMonth,
}

// SummaryModel shows where the money went: per-category totals over a
// selectable timeframe, plus the people expenses are booked under.
type SummaryModel struct {
	CommonModel
	expService *expense.Service

	table    table.Model
	all      []*expense.Expense
	rangeIdx int

	loading bool
	err     error
}

func NewSummaryModel(expSvc *expense.Service) SummaryModel {
	columns := []table.Column{
		{Title: "Category", Width: 20},
		{Title: "Total", Width: 12},
		{Title: "Share", Width: 26},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	p := Palette()

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(p.SelectedFg).
		Background(p.SelectedBg).
		Bold(false)
	t.SetStyles(s)

	return SummaryModel{
		expService: expSvc,
		table:      t,
		loading:    true,
	}
}

func (m SummaryModel) Title() string { return "Summary" }

func (m SummaryModel) ShortHelp() string {
	return "t: timeframe | r: refresh | Esc: back"
}

func (m SummaryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.all = msg.expenses
		m.refresh()

		return m, nil

	case RefreshMsg:
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "t":
			m.rangeIdx = (m.rangeIdx + 1) % len(summaryRanges)
			m.refresh()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *SummaryModel) refresh() {
	f := expense.Filter{Range: expense.DateRange{Kind: summaryRanges[m.rangeIdx]}}
	scoped := expense.Apply(m.all, f, time.Now())

	total := expense.Total(scoped)
	totals := expense.SumByCategory(scoped)

	rows := make([]table.Row, 0, len(totals))
	for _, ct := range totals {
		share := 0.0
		if total > 0 {
			share = float64(ct.TotalCents) / float64(total)
		}

		rows = append(rows, table.Row{
			ct.Category,
			FormatAmount(ct.TotalCents),
			fmt.Sprintf("%s %s", ProgressBar(share, 16), FormatPercent(share)),
		})
	}

	m.table.SetRows(rows)
}

func (m SummaryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading summary...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	f := expense.Filter{Range: expense.DateRange{Kind: summaryRanges[m.rangeIdx]}}
	scoped := expense.Apply(m.all, f, time.Now())

	header := fmt.Sprintf("[t] Timeframe: %s | Total: %s",
		accentStyle(summaryRanges[m.rangeIdx].String()),
		accentStyle(FormatAmount(expense.Total(scoped))),
	)

	persons := expense.DistinctPersons(m.all)
	personsLine := mutedStyle("People: none recorded")
	if len(persons) > 0 {
		personsLine = "People: " + strings.Join(persons, ", ")
	}

	p := Palette()

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
			personsLine,
		),
	)
}

// Messages

type summaryLoadMsg struct {
	expenses []*expense.Expense
	err      error
}

func (m SummaryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := m.expService.List(ctx)

		return summaryLoadMsg{expenses: expenses, err: err}
	}
}
