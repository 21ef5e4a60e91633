package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},  // top-left cell
		{5, 4, true},  // bottom-right cell
		{6, 3, false}, // Right is exclusive
		{2, 5, false}, // Bottom is exclusive
		{1, 3, false},
		{3, 2, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("edges = (%d, %d), expected (6, 5)", r.Right(), r.Bottom())
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(2, 3, 4, 1).Translate(-1, 2)
	if r != NewRect(1, 5, 4, 1) {
		t.Errorf("Translate() = %+v, expected {1 5 4 1}", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 1, 59, 5},
		{0, 1, 59, 1},
		{60, 1, 59, 59},
		{-3, -3, 3, -3},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestAbs(t *testing.T) {
	for v, want := range map[int]int{-1: 1, 0: 0, 1: 1} {
		if got := Abs(v); got != want {
			t.Errorf("Abs(%d) = %d, expected %d", v, got, want)
		}
	}
}
