package cmd

import (
	"fmt"

	"termsnake/internal/game"
)

func run(deps Deps, cfg game.Config) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}

	final, err := deps.RunTUI(cfg)
	if err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}

	// The TUI has left the alt screen by now, so the summary lands on the
	// normal screen and stays visible after exit.
	fmt.Fprintln(deps.Stdout, "Game Over!")
	fmt.Fprintf(deps.Stdout, "Final score: %d\n", final.Score)
	fmt.Fprintf(deps.Stdout, "Final length: %d\n", final.Length())
	fmt.Fprintf(deps.Stdout, "Level reached: %d\n", final.Level)
	return nil
}
