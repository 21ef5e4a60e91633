// blockbreak is a terminal breakout game.
//
// Usage:
//
//	blockbreak               - Start the main menu
//	blockbreak play          - Start a game directly
//	blockbreak scores        - Show high scores
//	blockbreak config        - Print the effective configuration
//	blockbreak serve         - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.blockbreak/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/platform/tui"
	"github.com/vovakirdan/blockbreak/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreak",
	Short: "Block Break - a breakout game for your terminal",
	Long: `Block Break is a breakout game played in the terminal.
Bounce the ball off your paddle and clear every block to advance.

Controls:
  ←/→ or A/D   - Move paddle
  Space        - Launch ball / Pause / Continue
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Back to menu

Examples:
  blockbreak
  blockbreak --difficulty hard
  blockbreak play --seed 42
  blockbreak scores
  blockbreak serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockbreak/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger returns a logger for interactive play. The terminal belongs to
// the game, so logs go to --log-file or nowhere.
func newLogger() (*log.Logger, io.Closer, error) {
	logger := log.NewWithOptions(io.Discard, log.Options{
		ReportTimestamp: true,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	if flagLogFile == "" {
		return logger, io.NopCloser(nil), nil
	}

	f, err := tea.LogToFileWith(flagLogFile, "blockbreak", logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return logger, f, nil
}

// openScores opens the score database. Play continues without one.
func openScores(logger *log.Logger) (*storage.Store, *storage.Board) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil, nil
	}

	board, err := storage.NewBoard(store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load high score: %v\n", err)
		store.Close()
		return nil, nil
	}
	return store, board
}

// runtimeConfig describes the current terminal. Stdout that is not a
// terminal gets the 80x24 default.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.Seed = flagSeed
	return rc
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store, board := openScores(logger)
	if store != nil {
		defer store.Close()
		defer board.Close()
	}

	opts := tui.SessionOptions{
		Config:  cfg,
		Logger:  logger,
		Runtime: runtimeConfig(),
	}
	if store != nil {
		opts.Store = store
		opts.Board = board
	}

	return tui.RunSession(opts)
}
