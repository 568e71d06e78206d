package trigrid

import "math/rand"

// Sampler owns the fixed-capacity buffer of pattern points for the mirror
// mode. Points are relative to the reference triangle at cell (0,0),
// pointing right. The buffer is allocated once and reset on regeneration,
// never grown.
type Sampler struct {
	buf []Point
	rng *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{
		buf: make([]Point, 0, MaxPixels),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Points returns the accepted sample points. The slice is valid until the
// next Regenerate.
func (s *Sampler) Points() []Point { return s.buf }

// Regenerate refills the buffer with up to want random points inside the
// reference triangle.
//
// Each attempt draws uniformly from the triangle's bounding box and is
// accepted only if it falls inside the triangle and is not the centroid
// (reserved for the center marker). Rejected attempts are not retried, so
// the accepted count is usually below want; that is the intended statistical
// behavior of bounding-box rejection sampling.
func (s *Sampler) Regenerate(side, want int) {
	s.buf = s.buf[:0]
	if side < MinSide {
		return
	}

	h := Height(side)
	ref := Vertices(0, 0, side, true)
	center := Centroid(ref)

	for i := 0; i < want && len(s.buf) < MaxPixels; i++ {
		p := Point{
			X: ref[0].X + s.rng.Intn(int(h)+1),
			Y: ref[0].Y - side/2 + s.rng.Intn(side+1),
		}
		if !PointInTriangle(p, ref) {
			continue
		}
		if p == center {
			continue
		}
		s.buf = append(s.buf, p)
	}
}

// Mirror translates a reference-triangle point into the triangle with the
// given centroid. Every triangle shows the same relative pattern, rigidly
// translated, not axis-flipped.
func Mirror(p, refCenter, center Point) Point {
	return Point{
		X: center.X + (p.X - refCenter.X),
		Y: center.Y + (p.Y - refCenter.Y),
	}
}
