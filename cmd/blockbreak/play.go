package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/blockbreak"
	"github.com/vovakirdan/blockbreak/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game without the menu",
	Long: `Start a Block Break game right away.

Difficulty options:
  easy   - 5 lives, wide paddle, slower ball
  normal - 3 lives, default paddle
  hard   - 2 lives, narrow paddle, faster ball
  fixed  - ball speed does not increase with the level

A field size of 0 in the config fits the field to the terminal.

Examples:
  blockbreak play
  blockbreak play --difficulty easy
  blockbreak play --seed 42
  blockbreak play --config ./my-blockbreak.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	rc := runtimeConfig()
	cfg = cfg.FitTerminal(rc.ScreenW, rc.ScreenH)

	opts := []blockbreak.Option{blockbreak.WithSeed(rc.Seed)}
	store, board := openScores(logger)
	if store != nil {
		defer store.Close()
		defer board.Close()
		opts = append(opts, blockbreak.WithScoreBoard(board))
	}

	game, err := blockbreak.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	return tui.Run(game, rc.ScreenW, rc.ScreenH, logger)
}
