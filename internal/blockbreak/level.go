package blockbreak

import "time"

// LevelParams describes the difficulty of one level.
type LevelParams struct {
	Level       int
	BallSpeed   int // relative pace, 55 at level 1, capped at 100
	PaddleSpeed int
	Rows        int
}

// Progression tracks the current level of a campaign.
type Progression struct {
	Current     int
	Max         int
	PaddleSpeed int
}

// NewProgression starts a campaign at level 1.
func NewProgression(maxLevel, paddleSpeed int) *Progression {
	return &Progression{Current: 1, Max: maxLevel, PaddleSpeed: paddleSpeed}
}

// NextLevel advances one level. At the last level it returns false and
// leaves Current unchanged.
func (p *Progression) NextLevel() bool {
	if p.Current < p.Max {
		p.Current++
		return true
	}
	return false
}

// Reset returns to level 1.
func (p *Progression) Reset() {
	p.Current = 1
}

// IsMax reports whether the current level is the last one.
func (p *Progression) IsMax() bool {
	return p.Current >= p.Max
}

// Params returns the parameters of the current level.
func (p *Progression) Params() LevelParams {
	return ParamsFor(p.Current, p.PaddleSpeed)
}

// ParamsFor returns the parameters of a given level.
func ParamsFor(level, paddleSpeed int) LevelParams {
	return LevelParams{
		Level:       level,
		BallSpeed:   ballSpeed(level),
		PaddleSpeed: paddleSpeed,
		Rows:        RowsForLevel(level),
	}
}

func ballSpeed(level int) int {
	return min(50+level*5, 100)
}

// TickInterval scales the base interval so level 1 runs at base and faster
// levels tick proportionally more often. The ball still moves one cell per tick.
func (lp LevelParams) TickInterval(base time.Duration) time.Duration {
	return base * time.Duration(ballSpeed(1)) / time.Duration(lp.BallSpeed)
}
