package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"kharcha/internal/budget"
	"kharcha/internal/category"
	"kharcha/internal/expense"
	"kharcha/internal/export"
)

type expensesState int

const (
	expensesStateBrowse expensesState = iota
	expensesStateForm
	expensesStateTimeframe
	expensesStateSearch
	expensesStateConfirmDelete
)

// autoDetect is the category select option that defers to the keyword
// recognizer.
const autoDetect = ""

type ExpensesModel struct {
	CommonModel
	expService    *expense.Service
	budService    *budget.Service
	exportService *export.Service
	exportDir     string

	state expensesState
	table table.Model

	all      []*expense.Expense
	filtered []*expense.Expense
	persons  []string

	filter      expense.Filter
	categoryIdx int
	personIdx   int

	picker      RangePicker
	searchInput textinput.Model

	form    *huh.Form
	editing *expense.Expense // nil while adding

	formTitle    string
	formAmount   string
	formCategory string
	formDate     string
	formPerson   string

	monthBudget *budget.Budget
	monthSpent  int64

	loading bool
	err     error
	status  string
}

func NewExpensesModel(expSvc *expense.Service, budSvc *budget.Service, exportSvc *export.Service, exportDir string) ExpensesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Title", Width: 30},
		{Title: "Amount", Width: 10},
		{Title: "Category", Width: 16},
		{Title: "Person", Width: 12},
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

	si := textinput.New()
	si.Placeholder = "title, category or person"
	si.Prompt = "Search: "
	si.Width = 32

	return ExpensesModel{
		expService:    expSvc,
		budService:    budSvc,
		exportService: exportSvc,
		exportDir:     exportDir,
		table:         t,
		picker:        NewRangePicker(),
		searchInput:   si,
		loading:       true,
	}
}

func (m ExpensesModel) Title() string { return "Expenses" }

func (m ExpensesModel) ShortHelp() string {
	switch m.state {
	case expensesStateForm:
		return "Navigate form | Esc: cancel"
	case expensesStateSearch:
		return "Type to search | Enter: keep | Esc: clear"
	case expensesStateConfirmDelete:
		return "y: delete | n: keep"
	case expensesStateTimeframe:
		return "Enter: select | Esc: back"
	}

	return "a: add | e: edit | d: delete | c/p/t: filters | /: search | f: clear | o: export | Esc: back"
}

func (m ExpensesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.all = msg.expenses
		m.monthBudget = msg.monthBudget
		m.refresh()

		return m, nil

	case expenseSavedMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error saving: %v", msg.err))
		} else {
			m.status = ""
		}

		m.state = expensesStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()

		return m, m.loadCmd()

	case expenseDeletedMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error deleting: %v", msg.err))
		} else {
			m.status = ""
		}

		m.state = expensesStateBrowse

		return m, m.loadCmd()

	case exportDoneMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.status = successStyle(fmt.Sprintf("Exported %d rows to %s", msg.count, msg.path))
		}

		return m, nil

	case RangeSelectedMsg:
		m.filter.Range = msg.Range
		m.state = expensesStateBrowse
		m.picker.Reset()
		m.refresh()

		return m, nil

	case RefreshMsg:
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case expensesStateBrowse:
		return m.updateBrowse(msg)
	case expensesStateForm:
		return m.updateForm(msg)
	case expensesStateTimeframe:
		return m.updateTimeframe(msg)
	case expensesStateSearch:
		return m.updateSearch(msg)
	case expensesStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m ExpensesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterForm(nil)
		case "e":
			if sel := m.selectedExpense(); sel != nil {
				return m.enterForm(sel)
			}

			return m, nil
		case "d":
			if m.selectedExpense() != nil {
				m.state = expensesStateConfirmDelete
			}

			return m, nil
		case "c":
			m.cycleCategory()
			return m, nil
		case "p":
			m.cyclePerson()
			return m, nil
		case "t":
			m.state = expensesStateTimeframe
			return m, nil
		case "/":
			m.state = expensesStateSearch
			m.searchInput.SetValue(m.filter.Search)
			m.searchInput.Focus()
			m.table.Blur()

			return m, textinput.Blink
		case "f":
			m.filter = expense.Filter{}
			m.categoryIdx = 0
			m.personIdx = 0
			m.searchInput.SetValue("")
			m.refresh()

			return m, nil
		case "o":
			return m, m.exportCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ExpensesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expensesStateBrowse
			m.form = nil
			m.editing = nil
			m.table.Focus()

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

func (m ExpensesModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
			m.state = expensesStateBrowse
			m.picker.Reset()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m ExpensesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.state = expensesStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, nil
		case tea.KeyEsc:
			m.state = expensesStateBrowse
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.filter.Search = ""
			m.table.Focus()
			m.refresh()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Live filtering: every keystroke narrows the table.
	m.filter.Search = m.searchInput.Value()
	m.refresh()

	return m, cmd
}

func (m ExpensesModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		sel := m.selectedExpense()
		if sel == nil {
			m.state = expensesStateBrowse
			return m, nil
		}

		return m, m.deleteCmd(sel)
	case "n", "esc":
		m.state = expensesStateBrowse
		return m, nil
	}

	return m, nil
}

func (m *ExpensesModel) enterForm(e *expense.Expense) (tea.Model, tea.Cmd) {
	m.editing = e

	if e == nil {
		m.formTitle = ""
		m.formAmount = ""
		m.formCategory = autoDetect
		m.formDate = FormatDate(time.Now())
		m.formPerson = ""
	} else {
		m.formTitle = e.Title
		m.formAmount = FormatAmount(e.AmountCents)
		m.formCategory = e.Category
		m.formDate = FormatDate(e.SpentAt)
		m.formPerson = e.Person
	}

	options := []huh.Option[string]{huh.NewOption("Auto-detect", autoDetect)}
	for _, label := range category.All() {
		options = append(options, huh.NewOption(label, label))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&m.formAmount),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate),

			huh.NewInput().
				Key("person").
				Title("Person").
				Placeholder("Self").
				Value(&m.formPerson),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expensesStateForm
	m.table.Blur()

	return *m, m.form.Init()
}

func (m ExpensesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.state == expensesStateTimeframe {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	header := fmt.Sprintf(
		"[c] Category: %s | [p] Person: %s | [t] Range: %s",
		accentStyle(m.categoryLabel()),
		accentStyle(m.personLabel()),
		accentStyle(m.filter.Range.Kind.String()),
	)

	if m.state == expensesStateSearch {
		header += "\n" + m.searchInput.View()
	} else if m.filter.Search != "" {
		header += fmt.Sprintf(" | Search: %s", accentStyle(m.filter.Search))
	}

	summary := fmt.Sprintf(
		"Showing %d of %d expenses | Total: %s",
		len(m.filtered), len(m.all),
		accentStyle(FormatAmount(expense.Total(m.filtered))),
	)

	p := Palette()

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		m.budgetLine(),
		summary,
		tableView,
	)

	if m.state == expensesStateForm && m.form != nil {
		label := "Add Expense"
		if m.editing != nil {
			label = "Edit Expense"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.SelectedBg).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", label, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.state == expensesStateConfirmDelete {
		if sel := m.selectedExpense(); sel != nil {
			content = errorStyle(fmt.Sprintf("Delete %q? (y/n)", sel.Title)) + "\n" + content
		}
	}

	if m.status != "" {
		content = m.status + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ExpensesModel) budgetLine() string {
	if m.monthBudget == nil || m.monthBudget.AmountCents <= 0 {
		return mutedStyle(fmt.Sprintf("%s budget: not set", FormatMonth(time.Now())))
	}

	used := budget.PercentUsed(m.monthSpent, m.monthBudget.AmountCents)

	line := fmt.Sprintf("%s budget: %s of %s (%s) %s",
		FormatMonth(time.Now()),
		FormatAmount(m.monthSpent),
		FormatAmount(m.monthBudget.AmountCents),
		FormatPercent(used),
		ProgressBar(used, 20),
	)

	if used >= 1 {
		return errorStyle(line)
	}

	return line
}

func (m ExpensesModel) categoryLabel() string {
	if m.filter.Category == "" {
		return "All"
	}

	return m.filter.Category
}

func (m ExpensesModel) personLabel() string {
	if m.filter.Person == "" {
		return "All"
	}

	return m.filter.Person
}

func (m *ExpensesModel) cycleCategory() {
	labels := category.All()

	m.categoryIdx = (m.categoryIdx + 1) % (len(labels) + 1)
	if m.categoryIdx == 0 {
		m.filter.Category = ""
	} else {
		m.filter.Category = labels[m.categoryIdx-1]
	}

	m.refresh()
}

func (m *ExpensesModel) cyclePerson() {
	if len(m.persons) == 0 {
		return
	}

	m.personIdx = (m.personIdx + 1) % (len(m.persons) + 1)
	if m.personIdx == 0 {
		m.filter.Person = ""
	} else {
		m.filter.Person = m.persons[m.personIdx-1]
	}

	m.refresh()
}

func (m ExpensesModel) selectedExpense() *expense.Expense {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.filtered) {
		return nil
	}

	return m.filtered[idx]
}

// refresh recomputes the filtered view and derived values from the raw
// collection. Persons come from the unfiltered list so the cycling
// options stay stable while filters change.
func (m *ExpensesModel) refresh() {
	now := time.Now()

	m.filtered = expense.Apply(m.all, m.filter, now)
	m.persons = expense.DistinctPersons(m.all)

	if m.personIdx > len(m.persons) {
		m.personIdx = 0
		m.filter.Person = ""
	}

	thisMonth := expense.Filter{Range: expense.DateRange{Kind: expense.RangeThisMonth}}
	m.monthSpent = expense.Total(expense.Apply(m.all, thisMonth, now))

	rows := make([]table.Row, 0, len(m.filtered))
	for _, e := range m.filtered {
		rows = append(rows, table.Row{
			FormatDate(e.SpentAt),
			e.Title,
			FormatAmount(e.AmountCents),
			e.Category,
			e.Person,
		})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// Messages

type expensesLoadMsg struct {
	expenses    []*expense.Expense
	monthBudget *budget.Budget
	err         error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := m.expService.List(ctx)
		if err != nil {
			return expensesLoadMsg{err: err}
		}

		now := time.Now()

		b, err := m.budService.Overall(ctx, now.Year(), int(now.Month()))
		if err != nil {
			return expensesLoadMsg{err: err}
		}

		return expensesLoadMsg{expenses: expenses, monthBudget: b}
	}
}

type expenseSavedMsg struct {
	err error
}

func (m ExpensesModel) saveCmd() tea.Cmd {
	editing := m.editing
	title := m.formTitle
	amount := expense.ParseAmount(m.formAmount)
	cat := m.formCategory
	spentAt := expense.ParseDate(m.formDate, time.Now())
	person := m.formPerson

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editing == nil {
			_, err := m.expService.Create(ctx, expense.CreateParams{
				Title:       title,
				AmountCents: amount,
				Category:    cat,
				SpentAt:     spentAt,
				Person:      person,
			})

			return expenseSavedMsg{err: err}
		}

		// Work on a copy: the original is still being rendered, and on
		// a storage error it must keep its stored values.
		updated := *editing
		updated.Title = title
		updated.AmountCents = amount
		updated.Category = cat
		updated.SpentAt = spentAt
		updated.Person = person

		return expenseSavedMsg{err: m.expService.Update(ctx, &updated)}
	}
}

type expenseDeletedMsg struct {
	err error
}

func (m ExpensesModel) deleteCmd(e *expense.Expense) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return expenseDeletedMsg{err: m.expService.Delete(ctx, e.ID)}
	}
}

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

// exportCmd writes the CURRENT filtered view, not the whole collection.
func (m ExpensesModel) exportCmd() tea.Cmd {
	filtered := m.filtered
	dir := m.exportDir

	return func() tea.Msg {
		path, err := m.exportService.Export(filtered, dir)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path, count: len(filtered)}
	}
}
