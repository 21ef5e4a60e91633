// Package blockbreak implements the Block Break simulation: paddle, ball,
// block grid, level progression and the game state machine.
// It has no terminal or timer dependencies; the platform drives it by
// calling Apply for input and Tick on a timer.
package blockbreak

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// EventKind identifies something that happened during a tick or input.
type EventKind int

const (
	EventLaunch EventKind = iota + 1
	EventBlockDestroyed
	EventLifeLost
	EventLevelComplete
	EventLevelStart
	EventGameOver
	EventGameComplete
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventLevelComplete:
		return "level_complete"
	case EventLevelStart:
		return "level_start"
	case EventGameOver:
		return "game_over"
	case EventGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Event is emitted by the game for logging and metrics.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Score  int
	Lives  int
	Level  int
	Points int // points awarded, for EventBlockDestroyed
}

// StepResult is the outcome of one Step.
type StepResult struct {
	Frame  Frame
	Events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithScoreBoard sets where finished sessions are recorded.
func WithScoreBoard(sb ScoreBoard) Option {
	return func(g *Game) {
		if sb != nil {
			g.scores = sb
		}
	}
}

// WithRand sets the launch-direction source.
func WithRand(r Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds the built-in RNG. Seed 0 uses the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = NewSimpleRNG(seed)
	}
}

// Game is one Block Break session. It is not safe for concurrent use;
// the platform calls it from a single event loop.
type Game struct {
	cfg    config.Config
	width  int
	height int

	paddle      *Paddle
	ball        *Ball
	grid        *Grid
	progression *Progression

	state State
	score int
	lives int
	tick  uint64

	rng    Rand
	scores ScoreBoard
	events []Event
}

// New validates cfg and creates a session in the Waiting state.
// The field size must already be resolved (see config.Config.FitTerminal).
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("blockbreak: %w", err)
	}
	if cfg.Field.Width == 0 || cfg.Field.Height == 0 {
		return nil, fmt.Errorf("blockbreak: %w: field size is unresolved", config.ErrInvalid)
	}

	g := &Game{
		cfg:    cfg,
		width:  cfg.Field.Width,
		height: cfg.Field.Height,
		scores: nopScoreBoard{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewSimpleRNG(time.Now().UnixNano())
	}

	g.paddle = NewPaddle(cfg.Paddle.Width, cfg.Paddle.Speed, g.width, g.height)
	g.ball = NewBall(g.paddle)
	g.progression = NewProgression(cfg.Gameplay.MaxLevel, cfg.Paddle.Speed)
	g.NewGame()
	return g, nil
}

// NewGame resets score, lives and level and serves a fresh grid.
func (g *Game) NewGame() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.progression.Reset()
	g.grid = NewGrid(g.progression.Current, g.width)
	g.resetBall()
}

// resetBall recentres paddle and ball and waits for a launch.
func (g *Game) resetBall() {
	g.paddle.Reset(g.width, g.height)
	g.ball.Reset(g.paddle)
	g.state = StateWaiting
}

// Apply handles one input action immediately.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		if !g.state.AcceptsMovement() {
			return
		}
		if a == core.ActionLeft {
			g.paddle.MoveLeft()
		} else {
			g.paddle.MoveRight()
		}
		g.ball.FollowPaddle(g.paddle)
		return
	}

	switch transition(g.state, a) {
	case outcomeLaunch:
		g.ball.Launch(g.rng)
		g.state = StatePlaying
		g.emit(EventLaunch, 0)
	case outcomePause:
		g.state = StatePaused
	case outcomeResume:
		g.state = StatePlaying
	case outcomeAdvance:
		g.advance()
	case outcomeNewGame:
		g.NewGame()
	}
}

// Tick advances the simulation by one step. Only the Playing state moves
// the ball.
func (g *Game) Tick() {
	g.tick++
	if g.state != StatePlaying {
		g.ball.FollowPaddle(g.paddle)
		return
	}
	g.ball.Move()
	g.resolveCollisions()
}

// Step applies the frame's actions in order, then ticks once.
func (g *Game) Step(in core.InputFrame) StepResult {
	for _, a := range in.Actions {
		g.Apply(a)
	}
	g.Tick()
	return StepResult{
		Frame:  g.Frame(),
		Events: g.DrainEvents(),
	}
}

// resolveCollisions checks walls, ceiling, floor, paddle and blocks in that
// order. Each check sees the result of the previous ones.
func (g *Game) resolveCollisions() {
	b := g.ball

	if b.X <= 1 || b.X >= g.width-1 {
		b.ReflectX()
		b.X = core.Clamp(b.X, 1, g.width-1)
	}

	if b.Y <= 1 {
		b.ReflectY()
		b.Y = 1
	}

	if b.Y >= g.height-1 {
		g.loseLife()
		return
	}

	if b.Y == g.paddle.Y-1 && g.paddle.Covers(b.X) {
		b.ReflectY()
		hitPos := float64(b.X-g.paddle.X) / float64(g.paddle.Width)
		switch {
		case hitPos < g.cfg.Bounce.LeftZone:
			b.DX = -core.Abs(b.DX)
		case hitPos > g.cfg.Bounce.RightZone:
			b.DX = core.Abs(b.DX)
		}
	}

	if blk := g.grid.CheckCollision(b.X, b.Y); blk != nil {
		if blk.Hit() {
			g.score += blk.Points
			g.emit(EventBlockDestroyed, blk.Points)
		}
		b.ReflectY()

		if g.grid.AllDestroyed() {
			g.state = StateLevelComplete
			g.emit(EventLevelComplete, 0)
		}
	}
}

func (g *Game) loseLife() {
	g.lives--
	g.emit(EventLifeLost, 0)

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.scores.AddScore(g.score, g.progression.Current)
		g.emit(EventGameOver, 0)
		return
	}
	g.resetBall()
}

// advance moves to the next level, or ends the campaign after the last one.
func (g *Game) advance() {
	if !g.progression.NextLevel() {
		g.state = StateGameComplete
		g.scores.AddScore(g.score, g.progression.Current)
		g.emit(EventGameComplete, 0)
		return
	}
	g.grid = NewGrid(g.progression.Current, g.width)
	g.resetBall()
	g.emit(EventLevelStart, 0)
}

func (g *Game) emit(kind EventKind, points int) {
	g.events = append(g.events, Event{
		Kind:   kind,
		Tick:   g.tick,
		Score:  g.score,
		Lives:  g.lives,
		Level:  g.progression.Current,
		Points: points,
	})
}

// DrainEvents returns the events emitted since the last call and clears them.
func (g *Game) DrainEvents() []Event {
	ev := g.events
	g.events = nil
	return ev
}

// TickInterval returns how long the platform should wait between ticks at
// the current level.
func (g *Game) TickInterval() time.Duration {
	base := g.cfg.TickInterval()
	if !g.cfg.Gameplay.SpeedScaling {
		return base
	}
	return g.progression.Params().TickInterval(base)
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Score returns the session score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the current level number, starting at 1.
func (g *Game) Level() int { return g.progression.Current }

// Width returns the play-field width.
func (g *Game) Width() int { return g.width }

// Height returns the play-field height.
func (g *Game) Height() int { return g.height }
