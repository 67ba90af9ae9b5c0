package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"kharcha/internal/budget"
	"kharcha/internal/expense"
)

type budgetState int

const (
	budgetStateView budgetState = iota
	budgetStateEdit
)

// BudgetModel manages the overall monthly budget and shows how much of
// it the current month has consumed.
type BudgetModel struct {
	CommonModel
	budService *budget.Service
	expService *expense.Service

	state budgetState

	current    *budget.Budget
	monthSpent int64

	form       *huh.Form
	formAmount string

	loading bool
	err     error
	status  string
}

func NewBudgetModel(budSvc *budget.Service, expSvc *expense.Service) BudgetModel {
	return BudgetModel{
		budService: budSvc,
		expService: expSvc,
		loading:    true,
	}
}

func (m BudgetModel) Title() string { return "Monthly Budget" }

func (m BudgetModel) ShortHelp() string {
	if m.state == budgetStateEdit {
		return "Enter: save | Esc: cancel"
	}

	return "s: set budget | x: clear | r: refresh | Esc: back"
}

func (m BudgetModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BudgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case budgetLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.current = msg.current
		m.monthSpent = msg.monthSpent

		return m, nil

	case budgetSavedMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
		} else {
			m.status = ""
		}

		m.state = budgetStateView
		m.form = nil

		return m, m.loadCmd()

	case RefreshMsg:
		return m, m.loadCmd()
	}

	switch m.state {
	case budgetStateView:
		return m.updateView(msg)
	case budgetStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m BudgetModel) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "r":
		m.loading = true
		return m, m.loadCmd()
	case "s":
		m.formAmount = ""
		if m.current != nil {
			m.formAmount = FormatAmount(m.current.AmountCents)
		}

		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Key("amount").
					Title(fmt.Sprintf("Budget for %s", FormatMonth(time.Now()))).
					Placeholder("0.00").
					Value(&m.formAmount),
			),
		).WithWidth(40).WithShowHelp(false)

		m.state = budgetStateEdit

		return m, m.form.Init()
	case "x":
		return m, m.clearCmd()
	}

	return m, nil
}

func (m BudgetModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = budgetStateView
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m BudgetModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading budget...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.state == budgetStateEdit && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	month := FormatMonth(time.Now())

	var body string

	if m.current == nil || m.current.AmountCents <= 0 {
		body = fmt.Sprintf("No budget set for %s.\n\nSpent so far: %s",
			month, FormatAmount(m.monthSpent))
	} else {
		used := budget.PercentUsed(m.monthSpent, m.current.AmountCents)

		gauge := fmt.Sprintf("%s %s", ProgressBar(used, 30), FormatPercent(used))
		if used >= 1 {
			gauge = errorStyle(gauge + "  budget exhausted")
		}

		body = fmt.Sprintf("Budget for %s: %s\nSpent so far:     %s\n\n%s",
			month,
			accentStyle(FormatAmount(m.current.AmountCents)),
			FormatAmount(m.monthSpent),
			gauge,
		)
	}

	if m.status != "" {
		body = m.status + "\n\n" + body
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}

// Messages

type budgetLoadMsg struct {
	current    *budget.Budget
	monthSpent int64
	err        error
}

func (m BudgetModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		now := time.Now()

		b, err := m.budService.Overall(ctx, now.Year(), int(now.Month()))
		if err != nil {
			return budgetLoadMsg{err: err}
		}

		all, err := m.expService.List(ctx)
		if err != nil {
			return budgetLoadMsg{err: err}
		}

		thisMonth := expense.Filter{Range: expense.DateRange{Kind: expense.RangeThisMonth}}
		spent := expense.Total(expense.Apply(all, thisMonth, now))

		return budgetLoadMsg{current: b, monthSpent: spent}
	}
}

type budgetSavedMsg struct {
	err error
}

func (m BudgetModel) saveCmd() tea.Cmd {
	amount := expense.ParseAmount(m.formAmount)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		now := time.Now()

		return budgetSavedMsg{err: m.budService.SetOverall(ctx, now.Year(), int(now.Month()), amount)}
	}
}

func (m BudgetModel) clearCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		now := time.Now()

		return budgetSavedMsg{err: m.budService.ClearOverall(ctx, now.Year(), int(now.Month()))}
	}
}
