package blockbreak

import (
	"fmt"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// BallView is the drawable part of the ball.
type BallView struct {
	X, Y   int
	Glyph  rune
	Active bool
}

// BlockView is the drawable part of an intact block.
type BlockView struct {
	Rect         core.Rect
	Color        core.Color
	Glyph        rune
	Hits         int
	HitsRequired int
}

// Frame is a read-only snapshot of everything needed to draw one tick.
// Coordinates are play-field cells; the border is outside the field.
type Frame struct {
	Tick      uint64
	Field     core.Rect
	Paddle    core.Rect
	Ball      BallView
	Blocks    []BlockView
	State     State
	Score     int
	Lives     int
	Level     int
	MaxLevel  int
	HighScore int
	Message   string
}

// Frame returns a snapshot of the current game.
func (g *Game) Frame() Frame {
	active := g.grid.Active()
	blocks := make([]BlockView, 0, len(active))
	for _, b := range active {
		blocks = append(blocks, BlockView{
			Rect:         b.Rect(),
			Color:        b.Color,
			Glyph:        b.Glyph(),
			Hits:         b.Hits,
			HitsRequired: b.HitsRequired,
		})
	}

	return Frame{
		Tick:   g.tick,
		Field:  core.NewRect(0, 0, g.width, g.height),
		Paddle: g.paddle.Rect(),
		Ball: BallView{
			X:      g.ball.X,
			Y:      g.ball.Y,
			Glyph:  g.ball.Glyph,
			Active: g.ball.Active,
		},
		Blocks:    blocks,
		State:     g.state,
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.progression.Current,
		MaxLevel:  g.progression.Max,
		HighScore: g.scores.HighScore(),
		Message:   Message(g.state, g.progression.Current),
	}
}

// Message returns the banner shown for a state, or "" while playing.
func Message(s State, level int) string {
	switch s {
	case StateWaiting:
		return "Press SPACE to launch!"
	case StatePaused:
		return "PAUSED - Press SPACE to continue"
	case StateGameOver:
		return "GAME OVER - Press R to restart or Q to exit"
	case StateLevelComplete:
		return fmt.Sprintf("Level %d Complete! Press SPACE", level)
	case StateGameComplete:
		return "CONGRATULATIONS! You beat all levels!"
	default:
		return ""
	}
}

// MessageColor returns the banner color for a state.
func MessageColor(s State) core.Color {
	switch s {
	case StateWaiting:
		return core.ColorCyan
	case StatePaused:
		return core.ColorYellow
	case StateGameOver:
		return core.ColorRed
	case StateLevelComplete:
		return core.ColorGreen
	case StateGameComplete:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// Hash returns a simple hash of the frame for determinism testing.
func (f *Frame) Hash() uint64 {
	h := f.Tick
	for _, v := range []int{
		f.Paddle.X, f.Paddle.Y, f.Paddle.W,
		f.Ball.X, f.Ball.Y,
		int(f.State), f.Score, f.Lives, f.Level, len(f.Blocks),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if f.Ball.Active {
		h = h*31 + 1
	}
	for _, b := range f.Blocks {
		h = h*31 + uint64(b.Rect.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Rect.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Hits)   //#nosec G115 -- hash computation
	}
	return h
}
