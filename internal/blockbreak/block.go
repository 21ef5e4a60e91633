package blockbreak

import "github.com/vovakirdan/blockbreak/internal/core"

// Grid layout constants.
const (
	BlockWidth   = 6
	BlockHeight  = 1
	BlockPadding = 1
	GridTop      = 3 // first block row
	MaxRows      = 8
)

// Block glyphs by remaining strength.
const (
	SolidBlockGlyph   = '█'
	CrackedBlockGlyph = '▓'
)

// Palette cycles through block rows from the top.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Block is a destructible brick. Only Hits and Destroyed change after creation.
type Block struct {
	X, Y, W, H   int
	Color        core.Color
	Points       int
	HitsRequired int
	Hits         int
	Destroyed    bool
}

// Hit registers one impact and reports whether it destroyed the block.
func (b *Block) Hit() bool {
	b.Hits++
	if b.Hits >= b.HitsRequired {
		b.Destroyed = true
		return true
	}
	return false
}

// Contains reports whether cell (x, y) lies inside the block.
func (b *Block) Contains(x, y int) bool {
	return b.Rect().Contains(x, y)
}

// Rect returns the block's bounding box.
func (b *Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Glyph returns the fill rune for the block's current strength.
func (b *Block) Glyph() rune {
	if b.HitsRequired > 1 && b.Hits > 0 {
		return CrackedBlockGlyph
	}
	return SolidBlockGlyph
}

// Grid holds the blocks of one level in generation order.
type Grid struct {
	Blocks []*Block
}

// RowsForLevel returns the number of block rows for a level.
func RowsForLevel(level int) int {
	return min(3+level, MaxRows)
}

// NewGrid builds the block layout for a level and field width.
// The result depends only on its arguments.
func NewGrid(level, width int) *Grid {
	rows := RowsForLevel(level)
	step := BlockWidth + BlockPadding
	cols := max((width-4)/step, 0)
	startX := (width - cols*step) / 2

	g := &Grid{Blocks: make([]*Block, 0, rows*cols)}
	for row := 0; row < rows; row++ {
		hits := 1
		if row < 2 && level > 2 {
			hits = 2
		}
		for col := 0; col < cols; col++ {
			g.Blocks = append(g.Blocks, &Block{
				X:            startX + col*step,
				Y:            GridTop + row*(BlockHeight+BlockPadding),
				W:            BlockWidth,
				H:            BlockHeight,
				Color:        Palette[row%len(Palette)],
				Points:       (rows - row) * 10,
				HitsRequired: hits,
			})
		}
	}
	return g
}

// CheckCollision returns the first intact block containing (x, y), or nil.
func (g *Grid) CheckCollision(x, y int) *Block {
	for _, b := range g.Blocks {
		if !b.Destroyed && b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Active returns the intact blocks in generation order.
func (g *Grid) Active() []*Block {
	active := make([]*Block, 0, len(g.Blocks))
	for _, b := range g.Blocks {
		if !b.Destroyed {
			active = append(active, b)
		}
	}
	return active
}

// Remaining returns the number of intact blocks.
func (g *Grid) Remaining() int {
	n := 0
	for _, b := range g.Blocks {
		if !b.Destroyed {
			n++
		}
	}
	return n
}

// AllDestroyed reports whether no intact block is left.
func (g *Grid) AllDestroyed() bool {
	return g.Remaining() == 0
}
