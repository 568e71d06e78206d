package trigrid

// Screen dimensions.
const (
	ScreenWidth  = 128
	ScreenHeight = 64

	// CenterY is the horizontal center line the grid rows grow out from.
	CenterY = 31
)

// Triangle size constraints.
const (
	MinSide = 5
	// MinSideLines is the effective minimum while grid lines are shown;
	// below it the deduplicated outline degenerates into solid black.
	MinSideLines = 10
	MaxSide      = 63
	SideStep     = 2
)

// MaxPixels bounds the sample buffer for the mirror pattern.
const MaxPixels = 200

// Config is the mutable render configuration owned by one session.
type Config struct {
	Side        int
	NumPixels   int
	ShowCenters bool
	ShowLines   bool
	Running     bool
}

// DefaultConfig is the state at session start: smallest grid, empty pattern.
func DefaultConfig() Config {
	return Config{Side: MinSide, Running: true}
}
