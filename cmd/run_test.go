package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"termsnake/internal/game"
)

func TestRun_PrintsSummary(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var calledTUI bool

	deps := Deps{
		RunTUI: func(cfg game.Config) (game.State, error) {
			calledTUI = true
			if cfg.Width != 30 || cfg.Height != 20 {
				t.Fatalf("config mismatch: got %dx%d", cfg.Width, cfg.Height)
			}
			if cfg.Seed != 123 {
				t.Fatalf("seed mismatch: got %d", cfg.Seed)
			}
			return game.State{
				Snake: make([]game.Point, 16),
				Score: 120,
				Level: 5,
			}, nil
		},
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
	}

	cfg := game.Config{Width: 30, Height: 20, Seed: 123}
	if err := run(deps, cfg); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !calledTUI {
		t.Fatalf("RunTUI not called")
	}

	want := "Game Over!\nFinal score: 120\nFinal length: 16\nLevel reached: 5\n"
	if stdout.String() != want {
		t.Fatalf("summary mismatch:\ngot  %q\nwant %q", stdout.String(), want)
	}
}

func TestRun_TUIError(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	want := errors.New("open /dev/tty: no such device")

	deps := Deps{
		RunTUI: func(cfg game.Config) (game.State, error) {
			return game.State{}, want
		},
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
	}

	err := run(deps, game.DefaultConfig())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected wrapped error %v, got %v", want, err)
	}
	if strings.Contains(stdout.String(), "Game Over!") {
		t.Fatalf("did not expect a summary on error, got stdout=%q", stdout.String())
	}
}

func TestRun_MissingDeps(t *testing.T) {
	t.Parallel()

	if err := run(Deps{}, game.DefaultConfig()); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}
