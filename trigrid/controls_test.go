package trigrid

import "testing"

func press(c *Controller, k Key) bool { return c.Handle(Event{Key: k, Kind: KindPress}) }

func TestControllerDefaults(t *testing.T) {
	c := NewController()
	cfg := c.Config()
	if cfg.Side != MinSide || cfg.NumPixels != 0 || cfg.ShowCenters || cfg.ShowLines {
		t.Fatalf("default config = %+v", cfg)
	}
	if !c.Running() || c.GeometryDirty() {
		t.Fatalf("running = %v, dirty = %v; want true, false", c.Running(), c.GeometryDirty())
	}
}

func TestControllerSideStepsUp(t *testing.T) {
	c := NewController()
	for i := 0; i < 10; i++ {
		if !press(c, KeyUp) {
			t.Fatalf("Up press %d rejected", i)
		}
	}
	if got := c.Config().Side; got != MinSide+10*SideStep {
		t.Fatalf("side = %d; want %d", got, MinSide+10*SideStep)
	}
	if !c.GeometryDirty() {
		t.Fatalf("side change did not mark geometry dirty")
	}
}

func TestControllerSideSaturatesAtMax(t *testing.T) {
	c := NewController()
	for i := 0; i < 29; i++ {
		press(c, KeyUp)
	}
	if got := c.Config().Side; got != MaxSide {
		t.Fatalf("side = %d; want %d", got, MaxSide)
	}
	if press(c, KeyUp) {
		t.Fatalf("Up at max side reported a change")
	}
	if got := c.Config().Side; got != MaxSide {
		t.Fatalf("side overshot to %d", got)
	}
}

func TestControllerSideFloor(t *testing.T) {
	c := NewController()
	if press(c, KeyDown) {
		t.Fatalf("Down at minimum side reported a change")
	}
	if got := c.Config().Side; got != MinSide {
		t.Fatalf("side = %d; want %d", got, MinSide)
	}

	press(c, KeyUp)
	if !press(c, KeyDown) {
		t.Fatalf("Down above minimum rejected")
	}
	if got := c.Config().Side; got != MinSide {
		t.Fatalf("side = %d; want %d", got, MinSide)
	}
}

func TestControllerPixelCount(t *testing.T) {
	c := NewController()
	if press(c, KeyLeft) {
		t.Fatalf("Left at zero pixels reported a change")
	}
	for i := 0; i < 3; i++ {
		if !press(c, KeyRight) {
			t.Fatalf("Right press %d rejected", i)
		}
	}
	press(c, KeyLeft)
	if got := c.Config().NumPixels; got != 2 {
		t.Fatalf("pixels = %d; want 2", got)
	}
	if !c.GeometryDirty() {
		t.Fatalf("pixel change did not mark geometry dirty")
	}
}

func TestControllerCentersToggle(t *testing.T) {
	c := NewController()
	press(c, KeyOK)
	if !c.Config().ShowCenters {
		t.Fatalf("short OK did not enable centers")
	}
	if c.GeometryDirty() {
		t.Fatalf("centers toggle must not invalidate the sample buffer")
	}
	press(c, KeyOK)
	if c.Config().ShowCenters {
		t.Fatalf("second short OK did not disable centers")
	}
}

func TestControllerLinesToggleClampsSide(t *testing.T) {
	c := NewController()
	if !c.Handle(Event{Key: KeyOK, Kind: KindLongPress}) {
		t.Fatalf("long OK rejected")
	}
	cfg := c.Config()
	if !cfg.ShowLines {
		t.Fatalf("long OK did not enable lines")
	}
	if cfg.Side != MinSideLines+1 {
		t.Fatalf("side = %d; want clamp to %d", cfg.Side, MinSideLines+1)
	}
	if !c.GeometryDirty() {
		t.Fatalf("side clamp did not mark geometry dirty")
	}

	// The clamped side stays on the MinSide+2k lattice.
	if (cfg.Side-MinSide)%SideStep != 0 {
		t.Fatalf("side %d left the lattice", cfg.Side)
	}

	// Down honours the raised floor.
	if press(c, KeyDown) {
		t.Fatalf("Down below line-mode floor reported a change")
	}

	// Disabling lines keeps the current side but restores the low floor.
	c.Handle(Event{Key: KeyOK, Kind: KindLongPress})
	if c.Config().ShowLines {
		t.Fatalf("second long OK did not disable lines")
	}
	for press(c, KeyDown) {
	}
	if got := c.Config().Side; got != MinSide {
		t.Fatalf("side = %d after lines off; want %d", got, MinSide)
	}
}

func TestControllerLinesToggleKeepsLargeSide(t *testing.T) {
	c := NewController()
	for i := 0; i < 12; i++ {
		press(c, KeyUp)
	}
	want := c.Config().Side
	c.Handle(Event{Key: KeyOK, Kind: KindLongPress})
	if got := c.Config().Side; got != want {
		t.Fatalf("side = %d; want %d unchanged above the floor", got, want)
	}
}

func TestControllerDirectionalRepeat(t *testing.T) {
	c := NewController()
	if !c.Handle(Event{Key: KeyUp, Kind: KindRepeat}) {
		t.Fatalf("Up repeat rejected")
	}
	if got := c.Config().Side; got != MinSide+SideStep {
		t.Fatalf("side = %d; want %d", got, MinSide+SideStep)
	}
}

func TestControllerDirectionalIgnoresLongPress(t *testing.T) {
	c := NewController()
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if c.Handle(Event{Key: k, Kind: KindLongPress}) {
			t.Fatalf("key %d acted on a long press", k)
		}
	}
	cfg := c.Config()
	if cfg.Side != MinSide || cfg.NumPixels != 0 {
		t.Fatalf("long presses changed config: %+v", cfg)
	}
}

func TestControllerBackStops(t *testing.T) {
	c := NewController()
	press(c, KeyBack)
	if c.Running() {
		t.Fatalf("Back did not stop the session")
	}
}

func TestControllerClean(t *testing.T) {
	c := NewController()
	press(c, KeyUp)
	c.Clean()
	if c.GeometryDirty() {
		t.Fatalf("Clean did not reset the dirty flag")
	}
	press(c, KeyOK)
	if c.GeometryDirty() {
		t.Fatalf("centers toggle re-dirtied geometry")
	}
}
