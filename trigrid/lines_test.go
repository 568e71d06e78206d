package trigrid

import "testing"

func TestWalkLineIncludesEndpoints(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 int
		pixels         int
	}{
		{0, 0, 9, 0, 10},
		{0, 0, 0, 9, 10},
		{0, 0, 9, 9, 10},
		{9, 9, 0, 0, 10},
		{3, 1, 3, 1, 1},
		{0, 0, 8, 3, 9},
	}
	for _, tt := range tests {
		var pts []Point
		WalkLine(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) {
			pts = append(pts, Point{x, y})
		})
		if len(pts) != tt.pixels {
			t.Fatalf("line (%d,%d)-(%d,%d): %d pixels; want %d", tt.x0, tt.y0, tt.x1, tt.y1, len(pts), tt.pixels)
		}
		if pts[0] != (Point{tt.x0, tt.y0}) || pts[len(pts)-1] != (Point{tt.x1, tt.y1}) {
			t.Fatalf("line (%d,%d)-(%d,%d): endpoints %v..%v", tt.x0, tt.y0, tt.x1, tt.y1, pts[0], pts[len(pts)-1])
		}
	}
}

func TestDashDotStipplePhase(t *testing.T) {
	c := newRecordCanvas(32, 32)
	DrawDashDotLine(c, 0, 0, 9, 0)

	// Pattern {1,0,1,1,0} over path positions 0..9.
	want := []Point{{0, 0}, {2, 0}, {3, 0}, {5, 0}, {7, 0}, {8, 0}}
	if len(c.points) != len(want) {
		t.Fatalf("stipple drew %d pixels; want %d", len(c.points), len(want))
	}
	for i, p := range want {
		if c.points[i] != p {
			t.Fatalf("stipple pixel %d = %v; want %v", i, c.points[i], p)
		}
	}
}

// The stipple phase is a function of path position, not absolute coordinate.
func TestDashDotStippleFollowsPath(t *testing.T) {
	a := newRecordCanvas(32, 32)
	DrawDashDotLine(a, 0, 5, 9, 5)
	b := newRecordCanvas(32, 32)
	DrawDashDotLine(b, 3, 5, 12, 5)

	if len(a.points) != len(b.points) {
		t.Fatalf("shifted line drew %d pixels; want %d", len(b.points), len(a.points))
	}
	for i := range a.points {
		if b.points[i].X != a.points[i].X+3 {
			t.Fatalf("pixel %d: %v is not %v shifted by 3", i, b.points[i], a.points[i])
		}
	}
}

func TestDrawDiagonalEdges(t *testing.T) {
	c := newRecordCanvas(64, 64)
	v := Vertices(0, 0, 21, true)
	n := DrawDiagonalEdges(c, v)
	if n != 2 {
		t.Fatalf("DrawDiagonalEdges returned %d; want 2", n)
	}
	if len(c.lines) != 2 {
		t.Fatalf("drew %d lines; want 2", len(c.lines))
	}
	want := [2][4]int{
		{v[0].X, v[0].Y, v[2].X, v[2].Y},
		{v[1].X, v[1].Y, v[2].X, v[2].Y},
	}
	for i := range want {
		if c.lines[i] != want[i] {
			t.Fatalf("line %d = %v; want %v", i, c.lines[i], want[i])
		}
	}
}

func TestDrawSeamsOncePerColumn(t *testing.T) {
	c := newRecordCanvas(ScreenWidth, ScreenHeight)
	side := 21
	cols, _ := GridExtent(side, Viewport{W: ScreenWidth, H: ScreenHeight})
	n := DrawSeams(c, side, cols, Viewport{W: ScreenWidth, H: ScreenHeight})
	if n != cols+1 {
		t.Fatalf("DrawSeams returned %d; want %d", n, cols+1)
	}
	if len(c.lines) != cols+1 {
		t.Fatalf("drew %d seams; want %d", len(c.lines), cols+1)
	}

	h := Height(side)
	seen := map[int]bool{}
	for i, l := range c.lines {
		if l[0] != l[2] {
			t.Fatalf("seam %d is not vertical: %v", i, l)
		}
		if want := int(float32(i) * h); l[0] != want {
			t.Fatalf("seam %d at x=%d; want %d", i, l[0], want)
		}
		if seen[l[0]] {
			t.Fatalf("seam at x=%d drawn twice", l[0])
		}
		seen[l[0]] = true
	}
}
