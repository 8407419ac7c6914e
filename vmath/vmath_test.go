package vmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/blockcurve/core"
)

func TestLerp(t *testing.T) {
	p0, p1 := core.Pt(0, 0), core.Pt(10, 20)

	tests := []struct {
		name string
		t    float32
		want core.Point
	}{
		{"Start", 0, p0},
		{"End", 1, p1},
		{"Midpoint", 0.5, core.Pt(5, 10)},
		{"Extrapolate past end", 2, core.Pt(20, 40)},
		{"Extrapolate before start", -1, core.Pt(-10, -20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(p0, p1, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := core.RectXYWH(0, 0, 64, 64)

	tests := []struct {
		name string
		p    core.Point
		want bool
	}{
		{"Top-left corner inclusive", core.Pt(0, 0), true},
		{"Interior", core.Pt(32, 32), true},
		{"Right edge exclusive", core.Pt(64, 10), false},
		{"Bottom edge exclusive", core.Pt(10, 64), false},
		{"Just inside bottom-right", core.Pt(63.99, 63.99), true},
		{"Negative", core.Pt(-0.01, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectContains(r, tt.p); got != tt.want {
				t.Errorf("RectContains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCircleContainsBoundaryInclusive(t *testing.T) {
	c := core.Pt(100, 100)
	if !CircleContains(c, 5, core.Pt(105, 100)) {
		t.Error("Expected point exactly on radius to be contained")
	}
	if CircleContains(c, 5, core.Pt(104, 104)) {
		t.Error("Expected point at distance ~5.66 to be outside")
	}
}

func TestCountInRect(t *testing.T) {
	r := core.RectXYWH(0, 0, 10, 10)
	pts := []core.Point{core.Pt(1, 1), core.Pt(10, 1), core.Pt(9, 9), core.Pt(-1, 5)}
	if got := CountInRect(r, pts); got != 2 {
		t.Errorf("CountInRect = %d, want 2", got)
	}
}

func TestBounds(t *testing.T) {
	got := Bounds(core.Pt(3, -1), core.Pt(-2, 4), core.Pt(0, 0))
	want := core.Rect{Min: core.Pt(-2, -1), Max: core.Pt(3, 4)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bounds mismatch (-want +got):\n%s", diff)
	}
	if got := Bounds(); got != (core.Rect{}) {
		t.Errorf("Bounds() = %v, want zero Rect", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Clamp(12) = %v, want 10", got)
	}
	if got := ClampInt(-3, 0, 10); got != 0 {
		t.Errorf("ClampInt(-3) = %v, want 0", got)
	}
}

type cellXY struct{ X, Y int }

func collect(x1, y1, x2, y2 float32) []cellXY {
	var cells []cellXY
	Traverse(x1, y1, x2, y2, func(x, y int) bool {
		cells = append(cells, cellXY{x, y})
		return true
	})
	return cells
}

func TestTraverse(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float32
		want           []cellXY
	}{
		{"Single cell", 0.2, 0.2, 0.8, 0.9, []cellXY{{0, 0}}},
		{"Horizontal", 0.5, 0.5, 3.5, 0.5, []cellXY{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"Vertical reverse", 1.5, 2.5, 1.5, 0.5, []cellXY{{1, 2}, {1, 1}, {1, 0}}},
		{"Shallow diagonal", 0.5, 0.5, 2.5, 1.5, []cellXY{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x1, tt.y1, tt.x2, tt.y2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Traverse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTraverseEarlyStop(t *testing.T) {
	visited := 0
	Traverse(0.5, 0.5, 9.5, 0.5, func(x, y int) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("Expected traversal to stop after 3 cells, visited %d", visited)
	}
}
