package trigrid

// Point is an integer screen coordinate.
type Point struct {
	X int
	Y int
}

// Height returns the height of an equilateral triangle: side * sqrt(3)/2.
//
// Single source of truth for the horizontal grid pitch. Truncation to int
// happens at the callers, never here.
func Height(side int) float32 {
	return float32(side) * 0.866025404
}

// PointingRight reports the orientation of the triangle at a grid cell.
// Orientations alternate so the triangles tile the plane without gaps.
func PointingRight(col, row int) bool {
	return (col+row)%2 == 0
}

// Vertices computes the three vertices of the triangle at (col, row).
//
// Pointing right the winding is left-top, left-bottom, apex; pointing left it
// is left, right-top, right-bottom. The vertical seams sit at col * Height.
func Vertices(col, row, side int, pointingRight bool) [3]Point {
	h := Height(side)
	baseX := int(float32(col) * h)
	baseY := CenterY + row*side/2

	if pointingRight {
		return [3]Point{
			{X: baseX, Y: baseY - side/2},
			{X: baseX, Y: baseY + side/2},
			{X: baseX + int(h), Y: baseY},
		}
	}
	return [3]Point{
		{X: baseX, Y: baseY},
		{X: baseX + int(h), Y: baseY - side/2},
		{X: baseX + int(h), Y: baseY + side/2},
	}
}

// Centroid returns the integer-truncated mean of the three vertices.
func Centroid(v [3]Point) Point {
	return Point{
		X: (v[0].X + v[1].X + v[2].X) / 3,
		Y: (v[0].Y + v[1].Y + v[2].Y) / 3,
	}
}

// Area returns the shoelace area of the triangle in half-parallelogram units
// (absolute value, truncating division by two).
func Area(v [3]Point) int {
	s := v[0].X*(v[1].Y-v[2].Y) + v[1].X*(v[2].Y-v[0].Y) + v[2].X*(v[0].Y-v[1].Y)
	if s < 0 {
		s = -s
	}
	return s / 2
}

// PointInTriangle reports whether p lies inside the triangle (boundary
// inclusive) using barycentric coordinates. Degenerate triangles contain
// nothing.
func PointInTriangle(p Point, v [3]Point) bool {
	denom := (v[1].Y-v[2].Y)*(v[0].X-v[2].X) + (v[2].X-v[1].X)*(v[0].Y-v[2].Y)
	if denom == 0 {
		return false
	}

	a := float32((v[1].Y-v[2].Y)*(p.X-v[2].X)+(v[2].X-v[1].X)*(p.Y-v[2].Y)) / float32(denom)
	b := float32((v[2].Y-v[0].Y)*(p.X-v[2].X)+(v[0].X-v[2].X)*(p.Y-v[2].Y)) / float32(denom)
	c := 1 - a - b

	return a >= 0 && a <= 1 && b >= 0 && b <= 1 && c >= 0 && c <= 1
}
