package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreak/internal/blockbreak"
	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// GameModel is the Bubble Tea model for one Block Break game.
// Input is applied as soon as it arrives; the simulation advances on its
// own tick chain whose interval follows the current level.
type GameModel struct {
	game      *blockbreak.Game
	screen    *core.Screen
	keyMapper *KeyMapper
	logger    *log.Logger
	metrics   *Metrics

	tickID     int64
	width      int
	height     int
	standalone bool
	done       bool
}

// NewGameModel wraps game for display in a terminal of the given size.
// A standalone model quits the program when the player leaves; otherwise
// it only reports Done so a parent model can take over.
func NewGameModel(game *blockbreak.Game, width, height int, logger *log.Logger, metrics *Metrics, standalone bool) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	m := GameModel{
		game:       game,
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		metrics:    metrics,
		tickID:     nextTickID(),
		standalone: standalone,
	}
	m.screen = core.NewScreen(m.screenSize(width, height))
	m.width, m.height = width, height
	return m
}

// screenSize picks the render buffer for a terminal. A terminal smaller
// than the frame gets a buffer of its own size so the notice fits.
func (m GameModel) screenSize(width, height int) (int, int) {
	needW, needH := blockbreak.ScreenSize(m.game.Width(), m.game.Height())
	if width > 0 && height > 0 && (width < needW || height < needH) {
		return width, height
	}
	return needW, needH
}

// Init starts the tick chain.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickID, m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(m.screenSize(msg.Width, msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.done = true
		if m.standalone || msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}

	m.game.Apply(action)
	m.handleEvents(m.game.DrainEvents())
	return m, nil
}

func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Ticks from a replaced model keep arriving until their chain ends.
	if msg.ID != m.tickID || m.done {
		return m, nil
	}

	m.game.Tick()
	m.handleEvents(m.game.DrainEvents())
	return m, tickCmd(m.tickID, m.game.TickInterval())
}

func (m GameModel) handleEvents(events []blockbreak.Event) {
	m.metrics.ObserveEvents(events)
	for _, ev := range events {
		switch ev.Kind {
		case blockbreak.EventBlockDestroyed:
			m.logger.Debug("block destroyed", "points", ev.Points, "score", ev.Score)
		case blockbreak.EventLaunch, blockbreak.EventLevelStart:
			m.logger.Debug(ev.Kind.String(), "level", ev.Level, "lives", ev.Lives)
		case blockbreak.EventLifeLost:
			m.logger.Info("life lost", "lives", ev.Lives, "level", ev.Level)
		case blockbreak.EventLevelComplete:
			m.logger.Info("level complete", "level", ev.Level, "score", ev.Score)
		case blockbreak.EventGameOver:
			m.logger.Info("game over", "score", ev.Score, "level", ev.Level)
		case blockbreak.EventGameComplete:
			m.logger.Info("game complete", "score", ev.Score)
		}
	}
}

// saveScreenshot writes the current frame as plain text.
func (m GameModel) saveScreenshot() {
	blockbreak.Render(m.game.Frame(), m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("blockbreak_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame, centered in the terminal.
func (m GameModel) View() string {
	if m.done {
		return ""
	}

	blockbreak.Render(m.game.Frame(), m.screen)
	out := RenderScreen(m.screen)
	if m.width <= 0 || m.height <= 0 {
		return out
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
}

// Done reports whether the player left the game.
func (m GameModel) Done() bool {
	return m.done
}

// Game returns the underlying session.
func (m GameModel) Game() *blockbreak.Game {
	return m.game
}

// Run plays a single game in the current terminal until the player quits.
func Run(game *blockbreak.Game, width, height int, logger *log.Logger) error {
	model := NewGameModel(game, width, height, logger, nil, true)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
