package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("new screen = %q, expected blank rows", got)
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-4, -1)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Errorf("negative size should give an empty screen, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColor(1, 1, '█', ColorRed)

	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red block", c)
	}

	// Writes outside the buffer are dropped and reads come back blank.
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColor(p[0], p[1], 'X', ColorGreen)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds write leaked into the buffer")
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("after Clear GetCell(1, 1) = %+v", c)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColor(5, 0, "❤●xyz", ColorYellow)

	// Runes, not bytes, advance the column; the tail is clipped.
	if got := s.Row(0); got != "     ❤●x" {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(6, 0); c.Color != ColorYellow {
		t.Errorf("text color = %v, expected yellow", c.Color)
	}
}

func TestScreenDrawTextCenteredColor(t *testing.T) {
	tests := []struct {
		width int
		text  string
		want  string
	}{
		{10, "ab", "    ab    "},
		{11, "❤❤❤", "    ❤❤❤    "},
		{7, "odd", "  odd  "},
	}

	for _, tc := range tests {
		s := NewScreen(tc.width, 1)
		s.DrawTextCenteredColor(0, tc.text, ColorCyan)
		if got := s.Row(0); got != tc.want {
			t.Errorf("centered %q in %d = %q, expected %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestScreenDrawRectColor(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRectColor(NewRect(1, 1, 3, 2), '=', ColorWhite)

	want := "     \n === \n === \n     "
	if got := s.String(); got != want {
		t.Errorf("screen = %q, expected %q", got, want)
	}
	if c := s.GetCell(2, 2); c.Color != ColorWhite {
		t.Errorf("rect color = %v, expected white", c.Color)
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBoxColor(NewRect(0, 0, 5, 4), ColorGray)

	want := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nexpected\n%s", got, want)
	}
	if c := s.GetCell(4, 3); c.Color != ColorGray {
		t.Errorf("corner color = %v, expected gray", c.Color)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColor(0, 0, "corner", ColorDefault)
	s.DrawTextColor(0, 2, "bottom", ColorDefault)

	s.Resize(3, 2)
	if got := s.String(); got != "cor\n   " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(5, 3)
	if got := s.String(); got != "cor  \n     \n     " {
		t.Errorf("after grow = %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank", got)
	}
}
