package blockbreak

import "github.com/vovakirdan/blockbreak/internal/core"

// Paddle is the player's horizontal bat. X is the left edge.
type Paddle struct {
	X, Y   int
	Width  int
	Height int
	Speed  int // cells per move
	MinX   int
	MaxX   int
}

// NewPaddle creates a paddle centred near the bottom of a field.
func NewPaddle(width, speed, fieldW, fieldH int) *Paddle {
	p := &Paddle{Width: width, Height: 1, Speed: speed}
	p.Reset(fieldW, fieldH)
	return p
}

// Reset recentres the paddle and recomputes its movement bounds.
func (p *Paddle) Reset(fieldW, fieldH int) {
	p.MinX = 1
	p.MaxX = fieldW - p.Width - 1
	p.X = (fieldW - p.Width) / 2
	p.Y = fieldH - 3
}

// MoveLeft moves the paddle left by Speed, stopping at MinX.
func (p *Paddle) MoveLeft() {
	p.X = max(p.MinX, p.X-p.Speed)
}

// MoveRight moves the paddle right by Speed, stopping at MaxX.
func (p *Paddle) MoveRight() {
	p.X = min(p.MaxX, p.X+p.Speed)
}

// Center returns the column the ball sits on while waiting to be served.
func (p *Paddle) Center() int {
	return p.X + p.Width/2
}

// Covers reports whether column x lies on the paddle.
func (p *Paddle) Covers(x int) bool {
	return x >= p.X && x < p.X+p.Width
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}
