package vmath

import (
	"math"

	"github.com/chewxy/math32"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every unit grid cell intersected by a line from (x1, y1) to (x2, y2)
// Coordinates are in grid units: cell (i, j) covers [i, i+1) x [j, j+1)
// Uses Supercover DDA to ensure no skipped cells, guaranteed to terminate by checking target bounds before stepping
func Traverse(x1, y1, x2, y2 float32, callback func(x, y int) bool) {
	ix, iy := Floor(x1), Floor(y1)
	targetX, targetY := Floor(x2), Floor(y2)

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// Parametric distance to the first boundary crossing and between crossings
	var tMaxX, tMaxY, tDeltaX, tDeltaY float32
	if dx == 0 {
		tMaxX = math.MaxFloat32
	} else {
		tDeltaX = 1 / dx
		fracX := x1 - math32.Floor(x1)
		if stepX > 0 {
			tMaxX = (1 - fracX) * tDeltaX
		} else {
			tMaxX = fracX * tDeltaX
		}
	}

	if dy == 0 {
		tMaxY = math.MaxFloat32
	} else {
		tDeltaY = 1 / dy
		fracY := y1 - math32.Floor(y1)
		if stepY > 0 {
			tMaxY = (1 - fracY) * tDeltaY
		} else {
			tMaxY = fracY * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	// Loop until both indices match targets
	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				// Y is done, forced to step X
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step (tMaxX == tMaxY)
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}
