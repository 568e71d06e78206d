package trigrid

import "fmt"

// Stats accumulates per-frame aggregate metrics for the debug readout.
// All counters are intra-frame; nothing is averaged across frames.
type Stats struct {
	Visible      int // triangles that passed culling
	FullyVisible int
	Partial      int

	Centers int // center markers drawn
	Lines   int // lines drawn (solid deduplicated or stippled)

	// Area is the representative triangle area for this frame. All grid
	// triangles are congruent, so it is computed once per frame.
	Area int

	// MirroredPixels counts pattern pixels actually drawn across all
	// triangles this frame.
	MirroredPixels int
}

func (s *Stats) Reset() { *s = Stats{} }

// AvgPattern returns the mean mirrored-pixel count per triangle with a drawn
// center marker; zero when no centers were drawn.
func (s *Stats) AvgPattern() int {
	if s.Centers == 0 {
		return 0
	}
	return s.MirroredPixels / s.Centers
}

// Overlay formats the on-screen readout: "# <area> T: <centers>", extended
// with " L: <lines>" when grid lines were drawn. The area reads zero while
// no centers are shown.
func (s *Stats) Overlay(showLines bool) string {
	area := 0
	if s.Centers > 0 {
		area = s.Area
	}
	if showLines {
		return fmt.Sprintf("# %d T: %d L: %d", area, s.Centers, s.Lines)
	}
	return fmt.Sprintf("# %d T: %d", area, s.Centers)
}
