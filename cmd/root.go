package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"termsnake/internal/game"
)

type Deps struct {
	RunTUI func(cfg game.Config) (game.State, error)
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		RunTUI: defaultRunTUI,
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	var seed uint64

	c := &cobra.Command{
		Use:          "termsnake [width height]",
		Short:        "Classic snake for your terminal",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height := parseBoardSize(args)
			if seed == 0 {
				seed = uint64(deps.Now().UnixNano())
			}
			cfg := game.Config{Width: width, Height: height, Seed: seed}
			if err := run(deps, cfg); err != nil {
				fmt.Fprintln(deps.Stderr, "hint: termsnake needs an interactive terminal")
				return err
			}
			return nil
		},
	}

	c.Flags().Uint64Var(&seed, "seed", 0, "fruit placement seed (0 = derive from the clock)")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

// parseBoardSize resolves the optional [width height] arguments. Anything
// other than two in-range integers keeps the defaults: bad geometry is
// not an error, the game just starts with the standard board.
func parseBoardSize(args []string) (width, height int) {
	width = game.DefaultWidth
	height = game.DefaultHeight
	if len(args) < 2 {
		return width, height
	}
	w, errW := strconv.Atoi(args[0])
	h, errH := strconv.Atoi(args[1])
	if errW != nil || errH != nil {
		return width, height
	}
	if w < game.MinWidth || h < game.MinHeight || w*h > game.MaxCells {
		return width, height
	}
	return w, h
}
