package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"kharcha/cmd/tui/internal/view"
	"kharcha/internal/budget"
	budgetStore "kharcha/internal/budget/store"
	"kharcha/internal/config"
	"kharcha/internal/database"
	"kharcha/internal/expense"
	expenseStore "kharcha/internal/expense/store"
	"kharcha/internal/export"
	"kharcha/internal/importer"
	"kharcha/internal/prefs"
	prefsStore "kharcha/internal/prefs/store"
)

type model struct {
	appName string

	currentView View

	expensesView view.ExpensesModel
	summaryView  view.SummaryModel
	budgetView   view.BudgetModel
	importView   view.ImportModel
	exportView   view.ExportModel
	settingsView view.SettingsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewExpenses View = 1
	ViewSummary  View = 2
	ViewBudget   View = 3
	ViewImport   View = 4
	ViewExport   View = 5
	ViewSettings View = 6
)

type services struct {
	cfg *config.Config

	expenses *expense.Service
	budgets  *budget.Service
	prefs    *prefs.Service
	exports  *export.Service
	imports  *importer.Service
}

func buildServices() services {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DB.Driver, cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.DB.Driver, cfg.DSN()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	expSvc := expense.NewService(expenseStore.New(db))
	budSvc := budget.NewService(budgetStore.New(db))
	prefSvc := prefs.NewService(prefsStore.New(db))
	exportSvc := export.NewService()
	importSvc := importer.NewService(expSvc)

	if cfg.Seed.SampleData {
		if err := expSvc.SeedIfEmpty(context.Background()); err != nil {
			slog.Error("failed to seed sample data", "error", err)
			os.Exit(1)
		}
	}

	if dark, err := prefSvc.DarkMode(context.Background()); err == nil {
		view.UseDark(dark)
	}

	return services{
		cfg:      cfg,
		expenses: expSvc,
		budgets:  budSvc,
		prefs:    prefSvc,
		exports:  exportSvc,
		imports:  importSvc,
	}
}

func initialModel(svcs services) model {
	return model{
		appName:      svcs.cfg.App.Name,
		currentView:  ViewMenu,
		expensesView: view.NewExpensesModel(svcs.expenses, svcs.budgets, svcs.exports, svcs.cfg.Export.Dir),
		summaryView:  view.NewSummaryModel(svcs.expenses),
		budgetView:   view.NewBudgetModel(svcs.budgets, svcs.expenses),
		importView:   view.NewImportModel(svcs.imports),
		exportView:   view.NewExportModel(svcs.expenses, svcs.exports, svcs.cfg.Export.Dir),
		settingsView: view.NewSettingsModel(svcs.prefs),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewExpenses
				return m, m.expensesView.Init()
			case "2":
				m.currentView = ViewSummary
				return m, m.summaryView.Init()
			case "3":
				m.currentView = ViewBudget
				return m, m.budgetView.Init()
			case "4":
				m.currentView = ViewImport
				return m, m.importView.Init()
			case "5":
				m.currentView = ViewExport
				return m, m.exportView.Init()
			case "6":
				m.currentView = ViewSettings
				return m, m.settingsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expensesView.Update(msg)
		m.expensesView = newModel.(view.ExpensesModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	case ViewBudget:
		var newModel tea.Model
		newModel, cmd = m.budgetView.Update(msg)
		m.budgetView = newModel.(view.BudgetModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. Expenses\n" +
				"2. Summary\n" +
				"3. Monthly Budget\n" +
				"4. Import Expenses\n" +
				"5. Export Expenses\n" +
				"6. Settings\n\n" +
				"q. Quit",
		)
	case ViewExpenses:
		return m.expensesView.View()
	case ViewSummary:
		return m.summaryView.View()
	case ViewBudget:
		return m.budgetView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	case ViewSettings:
		return m.settingsView.View()
	}

	return "Unknown View"
}

func main() {
	svcs := buildServices()

	p := tea.NewProgram(initialModel(svcs))

	// Any mutation, wherever it happened, pushes a refresh into the
	// running program so every view stays current.
	refresh := func() { p.Send(view.RefreshMsg{}) }
	defer svcs.expenses.Watch(refresh)()
	defer svcs.budgets.Watch(refresh)()
	defer svcs.prefs.Watch(refresh)()

	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
