package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"termsnake/internal/game"
	"termsnake/internal/tui"
)

func defaultRunTUI(cfg game.Config) (game.State, error) {
	p := tea.NewProgram(
		tui.NewModel(cfg),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return game.State{}, err
	}
	m, ok := final.(*tui.Model)
	if !ok {
		return game.State{}, fmt.Errorf("unexpected final model type %T", final)
	}
	return m.State(), nil
}
