package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/archduke/archduke/internal/command"
	"github.com/archduke/archduke/internal/ui/views"
)

type App struct {
	shell   *command.Shell
	console *views.ConsoleView
}

// Creates a new application
func NewApp(shell *command.Shell, tableWidth int) *App {
	return &App{
		shell:   shell,
		console: views.NewConsoleView(shell, tableWidth),
	}
}

func (a *App) Init() tea.Cmd {
	// Reopen the project that was managed when the last session ended
	a.shell.Resume()
	return a.console.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.console.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.console.View()
}
