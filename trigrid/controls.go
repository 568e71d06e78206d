package trigrid

// Key identifies one of the six input buttons.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyOK
	KeyBack
)

// EventKind classifies how a button was actuated.
type EventKind uint8

const (
	KindPress EventKind = iota
	KindRepeat
	KindLongPress
)

// Event is one classified input event.
type Event struct {
	Key  Key
	Kind EventKind
}

// Controller is the input state machine: it owns the render configuration
// and mutates it in response to events. Directional keys treat Repeat like
// Press (auto-repeat adjustment); long presses are meaningful only on OK.
type Controller struct {
	cfg   Config
	dirty bool
}

func NewController() *Controller {
	return &Controller{cfg: DefaultConfig()}
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) Running() bool  { return c.cfg.Running }

// GeometryDirty reports whether the sample buffer must be regenerated before
// the next frame: side length or sample count changed since the last Clean.
func (c *Controller) GeometryDirty() bool { return c.dirty }
func (c *Controller) Clean()              { c.dirty = false }

// minSide is the lower bound for the current mode. Sides move on the odd
// MinSide+2k lattice, so the line-mode floor is the first lattice value at
// or above MinSideLines.
func (c *Controller) minSide() int {
	if c.cfg.ShowLines {
		return MinSideLines + 1
	}
	return MinSide
}

// Handle applies one event and reports whether user-visible state changed.
func (c *Controller) Handle(ev Event) bool {
	switch ev.Key {
	case KeyUp:
		if ev.Kind == KindLongPress {
			return false
		}
		if c.cfg.Side < MaxSide {
			c.cfg.Side += SideStep
			c.dirty = true
			return true
		}

	case KeyDown:
		if ev.Kind == KindLongPress {
			return false
		}
		if c.cfg.Side > c.minSide() {
			c.cfg.Side -= SideStep
			c.dirty = true
			return true
		}

	case KeyLeft:
		if ev.Kind == KindLongPress {
			return false
		}
		if c.cfg.NumPixels > 0 {
			c.cfg.NumPixels--
			c.dirty = true
			return true
		}

	case KeyRight:
		if ev.Kind == KindLongPress {
			return false
		}
		c.cfg.NumPixels++
		c.dirty = true
		return true

	case KeyOK:
		switch ev.Kind {
		case KindPress:
			c.cfg.ShowCenters = !c.cfg.ShowCenters
			return true
		case KindLongPress:
			c.cfg.ShowLines = !c.cfg.ShowLines
			if c.cfg.ShowLines && c.cfg.Side < c.minSide() {
				c.cfg.Side = c.minSide()
				c.dirty = true
			}
			return true
		}

	case KeyBack:
		c.cfg.Running = false
	}
	return false
}
