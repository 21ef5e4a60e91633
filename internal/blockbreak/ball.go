package blockbreak

// BallGlyph is drawn at the ball position.
const BallGlyph = '●'

// Ball is a single-cell projectile. Velocity components are always -1, 0 or 1.
type Ball struct {
	X, Y   int
	DX, DY int
	Active bool // false while the ball rests on the paddle
	Glyph  rune
}

// NewBall creates an inactive ball resting on the paddle.
func NewBall(p *Paddle) *Ball {
	b := &Ball{Glyph: BallGlyph}
	b.Reset(p)
	return b
}

// Launch puts the ball in play, heading up and randomly left or right.
func (b *Ball) Launch(r Rand) {
	b.Active = true
	if r.Intn(2) == 0 {
		b.DX = -1
	} else {
		b.DX = 1
	}
	b.DY = -1
}

// Move advances the ball by its velocity. Inactive balls do not move.
func (b *Ball) Move() {
	if !b.Active {
		return
	}
	b.X += b.DX
	b.Y += b.DY
}

// ReflectX reverses horizontal velocity.
func (b *Ball) ReflectX() {
	b.DX = -b.DX
}

// ReflectY reverses vertical velocity.
func (b *Ball) ReflectY() {
	b.DY = -b.DY
}

// FollowPaddle keeps an inactive ball centred one row above the paddle.
func (b *Ball) FollowPaddle(p *Paddle) {
	if b.Active {
		return
	}
	b.X = p.Center()
	b.Y = p.Y - 1
}

// Reset deactivates the ball and places it back on the paddle.
func (b *Ball) Reset(p *Paddle) {
	b.Active = false
	b.DX = 1
	b.DY = -1
	b.X = p.Center()
	b.Y = p.Y - 1
}
