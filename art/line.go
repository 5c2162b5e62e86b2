package art

import "github.com/lodenkai/etchling/canvas"

// traceLine composites a straight segment using Bresenham's algorithm.
// Endpoints may sit outside the surface; the canvas drops those writes,
// so figures clip naturally at the edges.
func traceLine(cv *canvas.Canvas, x0, y0, x1, y1 int, col canvas.RGB, mode canvas.BlendMode, t int64) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	stepX := -1
	if x0 < x1 {
		stepX = 1
	}
	stepY := -1
	if y0 < y1 {
		stepY = 1
	}

	err := dx - dy

	for {
		cv.Blend(x0, y0, col, mode, t)

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += stepX
		}
		if e2 < dx {
			err += dx
			y0 += stepY
		}
	}
}
