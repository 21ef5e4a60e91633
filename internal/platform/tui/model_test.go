package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreak/internal/blockbreak"
	"github.com/vovakirdan/blockbreak/internal/config"
)

func newTestModel(t *testing.T, width, height int, standalone bool) GameModel {
	t.Helper()
	game, err := blockbreak.New(config.Default(), blockbreak.WithSeed(7))
	if err != nil {
		t.Fatalf("blockbreak.New() error = %v", err)
	}
	logger := log.New(&bytes.Buffer{})
	return NewGameModel(game, width, height, logger, nil, standalone)
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelInitStartsTicking(t *testing.T) {
	m := newTestModel(t, 80, 30, false)
	if m.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}
}

func TestGameModelLaunch(t *testing.T) {
	m := newTestModel(t, 80, 30, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.Game().State(); got != blockbreak.StatePlaying {
		t.Errorf("State() = %v after space, expected playing", got)
	}
}

func TestGameModelTick(t *testing.T) {
	m := newTestModel(t, 80, 30, false)

	m, cmd := update(t, m, TickMsg{ID: m.tickID})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.Game().Frame().Tick; got != 1 {
		t.Errorf("Frame().Tick = %d, expected 1", got)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, 80, 30, false)

	m, cmd := update(t, m, TickMsg{ID: m.tickID - 1})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if got := m.Game().Frame().Tick; got != 0 {
		t.Errorf("Frame().Tick = %d, expected 0", got)
	}
}

func TestGameModelTickIDsAreUnique(t *testing.T) {
	a := newTestModel(t, 80, 30, false)
	b := newTestModel(t, 80, 30, false)
	if a.tickID == b.tickID {
		t.Errorf("models share tick id %d", a.tickID)
	}
}

func TestGameModelQuitReturnsToParent(t *testing.T) {
	m := newTestModel(t, 80, 30, false)

	m, cmd := update(t, m, runeKey('q'))
	if !m.Done() {
		t.Error("Done() should be true after q")
	}
	if isQuit(cmd) {
		t.Error("embedded model should not quit the program")
	}

	if _, cmd = update(t, m, TickMsg{ID: m.tickID}); cmd != nil {
		t.Error("finished model should stop ticking")
	}
	if m.View() != "" {
		t.Error("finished model should render nothing")
	}
}

func TestGameModelQuitStandalone(t *testing.T) {
	m := newTestModel(t, 80, 30, true)

	_, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("standalone model should quit the program")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, 80, 30, false)
	view := m.View()

	if !strings.Contains(view, "Press SPACE to launch!") {
		t.Error("view should show the launch prompt")
	}
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the status line")
	}
}

func TestGameModelTooSmall(t *testing.T) {
	m := newTestModel(t, 80, 30, false)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("view should report a small terminal")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("notice should disappear after growing the terminal")
	}
}

func TestGameModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	game, err := blockbreak.New(config.Default(), blockbreak.WithSeed(7))
	if err != nil {
		t.Fatalf("blockbreak.New() error = %v", err)
	}
	m := NewGameModel(game, 80, 30, logger, nil, false)

	update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !strings.Contains(buf.String(), "launch") {
		t.Errorf("log should mention the launch, got %q", buf.String())
	}
}
