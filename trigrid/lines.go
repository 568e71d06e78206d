package trigrid

// dashDotPattern is the cyclic stipple ". .. ": 1px on, 1 off, 2 on, 1 off.
var dashDotPattern = [5]uint8{1, 0, 1, 1, 0}

// WalkLine visits every pixel on the line from (x0,y0) to (x1,y1) using
// Bresenham's algorithm. Both endpoints are included.
func WalkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		visit(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawDashDotLine draws a line with the cyclic dash-dot stipple. The stipple
// phase advances with path position, not absolute coordinate, so it continues
// seamlessly across direction changes within the traversal.
func DrawDashDotLine(c Canvas, x0, y0, x1, y1 int) {
	i := 0
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		if dashDotPattern[i] != 0 {
			c.DrawPoint(x, y)
		}
		i = (i + 1) % len(dashDotPattern)
	})
}

// DrawTriangleOutline draws the three edges of a triangle with the dash-dot
// stipple. Shared edges of adjacent triangles are redrawn; harmless on a
// binary canvas.
func DrawTriangleOutline(c Canvas, v [3]Point) {
	DrawDashDotLine(c, v[0].X, v[0].Y, v[1].X, v[1].Y)
	DrawDashDotLine(c, v[1].X, v[1].Y, v[2].X, v[2].Y)
	DrawDashDotLine(c, v[2].X, v[2].Y, v[0].X, v[0].Y)
}

// DrawDiagonalEdges draws the two diagonal edges owned by a pointing-right
// triangle (top-to-apex and bottom-to-apex) as solid lines and returns the
// number of lines drawn.
//
// Ownership keeps the full-grid outline deduplicated: pointing-left
// triangles draw nothing, and the vertical seams are drawn once per column
// by DrawSeams.
func DrawDiagonalEdges(c Canvas, v [3]Point) int {
	c.DrawLine(v[0].X, v[0].Y, v[2].X, v[2].Y)
	c.DrawLine(v[1].X, v[1].Y, v[2].X, v[2].Y)
	return 2
}

// DrawSeams draws the vertical seam of every column boundary once, full
// viewport height, and returns the number of lines drawn (cols+1).
func DrawSeams(c Canvas, side, cols int, vp Viewport) int {
	h := Height(side)
	for col := 0; col <= cols; col++ {
		x := int(float32(col) * h)
		c.DrawLine(x, 0, x, vp.H-1)
	}
	return cols + 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
