package trigrid

// Viewport is the screen rectangle triangles are culled against.
type Viewport struct {
	W int
	H int
}

// Visible reports whether any part of the triangle may be on screen.
//
// The test is conservative: a triangle is invisible only when all three
// vertices lie beyond the same viewport edge. A triangle whose vertices are
// all outside but whose interior crosses the viewport still counts as
// visible; tightening the test would change the rendered pattern.
func Visible(v [3]Point, vp Viewport) bool {
	minX, maxX := v[0].X, v[0].X
	for _, p := range v[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	if maxX < 0 || minX > vp.W {
		return false
	}

	if v[0].Y > vp.H && v[1].Y > vp.H && v[2].Y > vp.H {
		return false
	}
	if v[0].Y < 0 && v[1].Y < 0 && v[2].Y < 0 {
		return false
	}
	return true
}

// FullyVisible reports whether every vertex lies within the viewport.
func FullyVisible(v [3]Point, vp Viewport) bool {
	for _, p := range v {
		if p.X < 0 || p.X >= vp.W || p.Y < 0 || p.Y >= vp.H {
			return false
		}
	}
	return true
}

// GridExtent returns the number of enumerated columns and the half-extent of
// rows for a side length. Rows are iterated from -rows to rows-1 around the
// center line. The +2 overscan keeps edge triangles clipped by truncation in
// the enumeration.
func GridExtent(side int, vp Viewport) (cols, rows int) {
	h := Height(side)
	cols = int(float32(vp.W)/h) + 2
	rows = int(float32(vp.H)/(float32(side)/2)) + 2
	return cols, rows
}
