package render

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
)

func TestNewViewportReservesStatusBar(t *testing.T) {
	v := NewViewport(128, 37)
	if v.Cols != 128 || v.Rows != 36 {
		t.Fatalf("viewport = %dx%d, want 128x36", v.Cols, v.Rows)
	}
	if v.UnitsPerCol() != 8 || v.UnitsPerRow() != 16 {
		t.Errorf("units per cell = %v x %v, want 8 x 16", v.UnitsPerCol(), v.UnitsPerRow())
	}

	tiny := NewViewport(0, 1)
	if tiny.Cols != 1 || tiny.Rows != 1 {
		t.Errorf("tiny viewport = %dx%d, want 1x1", tiny.Cols, tiny.Rows)
	}
}

func TestViewportPointerWorld(t *testing.T) {
	v := NewViewport(128, 37)

	tests := []struct {
		name string
		x, y int
		want core.Point
	}{
		{"Origin cell", 0, 0, core.Pt(4, 8)},
		{"Interior cell", 10, 3, core.Pt(84, 56)},
		{"Last cell", 127, 35, core.Pt(1020, 568)},
		{"Status bar row clamps", 5, 36, core.Pt(44, 568)},
		{"Outside clamps", -3, 200, core.Pt(4, 568)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.PointerWorld(tt.x, tt.y); got != tt.want {
				t.Errorf("PointerWorld(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestViewportToCell(t *testing.T) {
	v := NewViewport(128, 37)

	tests := []struct {
		name   string
		p      core.Point
		x, y   int
		inside bool
	}{
		{"Origin", core.Pt(0, 0), 0, 0, true},
		{"Cell boundary belongs to next cell", core.Pt(8, 16), 1, 1, true},
		{"Last unit", core.Pt(1023.5, 575.5), 127, 35, true},
		{"Right edge", core.Pt(1024, 0), 128, 0, false},
		{"Negative", core.Pt(-1, 10), -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := v.ToCell(tt.p)
			if x != tt.x || y != tt.y || ok != tt.inside {
				t.Errorf("ToCell(%v) = %d, %d, %v; want %d, %d, %v", tt.p, x, y, ok, tt.x, tt.y, tt.inside)
			}
		})
	}
}

func TestViewportPickRadius(t *testing.T) {
	v := NewViewport(128, 37)
	want := math32.Sqrt(8*8+16*16) / 2
	if got := v.PointerSlop(); math32.Abs(got-want) > 1e-4 {
		t.Errorf("PointerSlop() = %v, want %v", got, want)
	}
	if got := v.PickRadius(); got != v.PointerSlop() {
		t.Errorf("PickRadius() = %v, want slop %v", got, v.PointerSlop())
	}

	// One terminal cell per world unit pair keeps the fixed radius
	fine := NewViewport(constants.WorldPixelWidth, constants.WorldPixelHeight+constants.StatusBarHeight)
	if got := fine.PickRadius(); got != constants.PickRadius {
		t.Errorf("fine PickRadius() = %v, want %v", got, constants.PickRadius)
	}
}

func TestViewportCenterInsideCell(t *testing.T) {
	v := NewViewport(100, 31)
	for y := 0; y < v.Rows; y += 7 {
		for x := 0; x < v.Cols; x += 9 {
			cx, cy, ok := v.ToCell(v.Center(x, y))
			if !ok || cx != x || cy != y {
				t.Errorf("ToCell(Center(%d, %d)) = %d, %d, %v", x, y, cx, cy, ok)
			}
		}
	}
}
