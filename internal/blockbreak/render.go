package blockbreak

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	HeartChar  = '❤'
)

// Layout around the play field: one border cell on each side, then two
// status lines below the bottom border.
const (
	FrameExtraW = 2
	FrameExtraH = 4
)

// KeyHints is the second status line. ShortKeyHints replaces it when the
// screen is too narrow.
const (
	KeyHints      = "[←/→] Move  [Space] Launch/Pause  [R] Restart  [Q] Quit"
	ShortKeyHints = "←/→ Space R Q"
)

// ScreenSize returns the screen needed to draw a field of the given size.
func ScreenSize(fieldW, fieldH int) (int, int) {
	return fieldW + FrameExtraW, fieldH + FrameExtraH
}

// Render draws a frame into dst. dst is cleared first.
func Render(f Frame, dst *core.Screen) {
	dst.Clear()

	needW, needH := ScreenSize(f.Field.W, f.Field.H)
	if dst.Width() < needW || dst.Height() < needH {
		renderTooSmall(dst, needW, needH)
		return
	}

	dst.DrawBoxColor(core.NewRect(0, 0, needW, f.Field.H+2), core.ColorWhite)

	// Field cell (x, y) is drawn at (x+1, y+1), inside the border.
	for _, b := range f.Blocks {
		dst.DrawRectColor(b.Rect.Translate(1, 1), b.Glyph, b.Color)
	}

	p := f.Paddle.Translate(1, 1)
	dst.DrawRectColor(p, PaddleChar, core.ColorWhite)

	dst.SetColor(f.Ball.X+1, f.Ball.Y+1, f.Ball.Glyph, core.ColorYellow)

	if f.Message != "" {
		lines := wrapText(f.Message, f.Field.W)
		y := f.Field.H/2 + 1 - (len(lines)-1)/2
		for i, line := range lines {
			x := (f.Field.W-utf8.RuneCountInString(line))/2 + 1
			dst.DrawTextColor(x, y+i, line, MessageColor(f.State))
		}
	}

	renderStatus(f, dst, f.Field.H+2)
}

func renderStatus(f Frame, dst *core.Screen, y int) {
	hearts := strings.Repeat(string(HeartChar), f.Lives)
	head := fmt.Sprintf("Score: %d  |  Lives: ", f.Score)
	tail := fmt.Sprintf("  |  Level: %d/%d  |  High Score: %d", f.Level, f.MaxLevel, f.HighScore)
	hints := KeyHints

	inner := dst.Width() - 2
	if utf8.RuneCountInString(head+hearts+tail) > inner {
		head = fmt.Sprintf("S:%d ", f.Score)
		tail = fmt.Sprintf(" L:%d/%d HI:%d", f.Level, f.MaxLevel, f.HighScore)
	}
	if utf8.RuneCountInString(hints) > inner {
		hints = ShortKeyHints
	}

	x := 1
	write := func(s string, c core.Color) {
		dst.DrawTextColor(x, y, s, c)
		x += utf8.RuneCountInString(s)
	}

	write(head, core.ColorWhite)
	write(hearts, core.ColorRed)
	write(tail, core.ColorWhite)

	dst.DrawTextColor(1, y+1, hints, core.ColorGray)
}

// wrapText breaks s into lines of at most width runes, splitting at spaces.
// A word longer than width is cut.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

func renderTooSmall(dst *core.Screen, needW, needH int) {
	msg := fmt.Sprintf("Terminal too small: need %dx%d", needW, needH)
	hint := fmt.Sprintf("have %dx%d, press Q to quit", dst.Width(), dst.Height())
	y := dst.Height() / 2
	dst.DrawTextCenteredColor(y-1, msg, core.ColorRed)
	dst.DrawTextCenteredColor(y, hint, core.ColorDefault)
}
