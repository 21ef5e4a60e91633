package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockbreak/internal/blockbreak"
	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Config  config.Config
	Store   *storage.Store        // may be nil; the scoreboard is then empty
	Board   blockbreak.ScoreBoard // may be nil; scores are then not kept
	Logger  *log.Logger
	Metrics *Metrics
	ID      string

	// Runtime is the terminal size at session start. Its seed applies to
	// the first game only; later games are seeded from the clock.
	Runtime core.RuntimeConfig
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game or scores -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	logger   *log.Logger
	current  sessionScreen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session that starts on the main menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := SessionModel{
		opts:   opts,
		logger: logger.With("session", opts.ID),
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
	m.menu = NewMenuModel(m.width, m.height, m.highScore())
	return m
}

// ID returns the session identifier.
func (m SessionModel) ID() string {
	return m.opts.ID
}

func (m SessionModel) highScore() int {
	if m.opts.Board == nil {
		return 0
	}
	return m.opts.Board.HighScore()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceStart:
		return m.startGame()

	case ChoiceScores:
		var src ScoreSource
		if m.opts.Store != nil {
			src = m.opts.Store
		}
		m.scores = NewScoreboardModel(src, m.width, m.height)
		m.current = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	cfg := m.opts.Config.FitTerminal(m.width, m.height)
	opts := []blockbreak.Option{blockbreak.WithSeed(m.opts.Runtime.Seed)}
	if m.opts.Board != nil {
		opts = append(opts, blockbreak.WithScoreBoard(m.opts.Board))
	}

	game, err := blockbreak.New(cfg, opts...)
	if err != nil {
		m.logger.Warn("could not start game", "error", err)
		m.menu = NewMenuModel(m.width, m.height, m.highScore()).WithStatus(err.Error())
		return m, nil
	}
	m.opts.Runtime.Seed = 0

	m.logger.Info("game started", "width", cfg.Field.Width, "height", cfg.Field.Height)
	m.game = NewGameModel(game, m.width, m.height, m.logger, m.opts.Metrics, false)
	m.current = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.Done() {
		m.logger.Info("game left", "score", m.game.Game().Score(), "state", m.game.Game().State())
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.GoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.width, m.height, m.highScore())
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu loop in the current terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
