package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/archduke/archduke/internal/command"
	"github.com/archduke/archduke/internal/config"
	"github.com/archduke/archduke/internal/project"
	"github.com/archduke/archduke/internal/ui"
)

// MustLoadProjects restores every stored project into a fresh repository.
func MustLoadProjects() *project.Repository {
	records, err := globalStore.LoadProjects()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load projects")
		panic(err)
	}

	repo := project.NewRepository()
	repo.Restore(records)
	globalLogger.Info().
		Int("projects", repo.Len()).
		Msg("loaded projects")
	return repo
}

func MustRunConsole(repo *project.Repository) {
	shell := command.New(repo, globalStore, globalLogger.With().Str("component", "shell").Logger())
	p := tea.NewProgram(ui.NewApp(shell, config.Global().UI.TableWidth), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		globalLogger.Error().
			Err(err).
			Msg("console exited with error")
		panic(err)
	}
	globalLogger.Info().Msg("console closed")
}
