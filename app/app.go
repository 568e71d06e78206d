// Package app wires the triangular grid engine to a HAL: it owns the render
// configuration and sample buffer for one session and runs the input loop.
package app

import (
	"errors"
	"time"

	"github.com/fgreil/mitzi-karl-eido/hal"
	"github.com/fgreil/mitzi-karl-eido/trigrid"
)

// ErrQuit is returned by Step when the user exits with Back. Callers treat
// it as a clean shutdown.
var ErrQuit = errors.New("quit")

// Hold classification in Step ticks. The runners pace Step at 60 Hz, so a
// tick is ~16ms.
const (
	longPressTicks   = 30 // held OK becomes a long press after ~500ms
	repeatDelayTicks = 24 // directional auto-repeat starts after ~400ms
	repeatEveryTicks = 6  // then repeats every ~100ms
)

// Session is the running app: exclusive owner of the configuration and the
// sample buffer. Single-threaded; Step must be called from one goroutine.
type Session struct {
	log    hal.Logger
	fb     hal.Framebuffer
	events <-chan hal.KeyEvent

	canvas   *Canvas
	ctrl     *trigrid.Controller
	sampler  *trigrid.Sampler
	renderer *trigrid.Renderer

	held      trigrid.Key
	heldTicks int
	longSent  bool

	needRender bool
}

// NewSession acquires the display and input resources and draws the first
// frame. A missing framebuffer or keyboard is fatal.
func NewSession(h hal.HAL) (*Session, error) {
	s := &Session{log: h.Logger()}

	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if s.fb == nil {
		return nil, errors.New("no display framebuffer")
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.events = kbd.Events()
		}
	}
	if s.events == nil {
		return nil, errors.New("no input source")
	}

	s.canvas = NewCanvas(s.fb)
	s.ctrl = trigrid.NewController()
	s.sampler = trigrid.NewSampler(time.Now().UnixNano())
	s.renderer = trigrid.NewRenderer(s.canvas)

	cfg := s.ctrl.Config()
	s.sampler.Regenerate(cfg.Side, cfg.NumPixels)
	s.render()

	if s.log != nil {
		s.log.WriteLineString("eido: session started")
	}
	return s, nil
}

// Config returns the current render configuration.
func (s *Session) Config() trigrid.Config { return s.ctrl.Config() }

// Stats returns the metrics of the last rendered frame.
func (s *Session) Stats() *trigrid.Stats { return s.renderer.Stats() }

// Step runs one poll cycle: drain pending key edges, synthesize repeat and
// long-press events for the held key, regenerate samples if the geometry
// changed, and redraw once if anything user-visible changed.
func (s *Session) Step() error {
	for drained := false; !drained; {
		select {
		case ev := <-s.events:
			s.handleEdge(ev)
		default:
			drained = true
		}
	}

	s.tickHeld()

	if !s.ctrl.Running() {
		if s.log != nil {
			s.log.WriteLineString("eido: exit")
		}
		return ErrQuit
	}

	if s.ctrl.GeometryDirty() {
		cfg := s.ctrl.Config()
		s.sampler.Regenerate(cfg.Side, cfg.NumPixels)
		s.ctrl.Clean()
		s.needRender = true
	}
	if s.needRender {
		s.render()
		s.needRender = false
	}
	return nil
}

// Run steps the session until Back or ctx cancellation.
func (s *Session) Run(done <-chan struct{}) error {
	t := time.NewTicker(time.Second / 60)
	defer t.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-t.C:
			if err := s.Step(); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (s *Session) render() {
	s.renderer.RenderFrame(s.ctrl.Config(), s.sampler.Points())
	_ = s.fb.Present()
}

// handleEdge turns raw press/release edges into classified events. OK is
// deferred to its release (or the long-press threshold) so a short press and
// a long press stay distinct; all other keys fire on the press edge.
func (s *Session) handleEdge(ev hal.KeyEvent) {
	k := mapKey(ev.Code)
	if k == trigrid.KeyNone {
		return
	}

	if ev.Press {
		s.held = k
		s.heldTicks = 0
		s.longSent = false
		if k != trigrid.KeyOK {
			s.dispatch(trigrid.Event{Key: k, Kind: trigrid.KindPress})
		}
		return
	}

	if k != s.held {
		return
	}
	if k == trigrid.KeyOK && !s.longSent {
		s.dispatch(trigrid.Event{Key: trigrid.KeyOK, Kind: trigrid.KindPress})
	}
	s.held = trigrid.KeyNone
	s.heldTicks = 0
}

// tickHeld advances the hold clock: long press for OK, auto-repeat for the
// directional keys.
func (s *Session) tickHeld() {
	if s.held == trigrid.KeyNone {
		return
	}
	s.heldTicks++

	if s.held == trigrid.KeyOK {
		if !s.longSent && s.heldTicks >= longPressTicks {
			s.longSent = true
			s.dispatch(trigrid.Event{Key: trigrid.KeyOK, Kind: trigrid.KindLongPress})
		}
		return
	}
	if s.held == trigrid.KeyBack {
		return
	}
	if s.heldTicks >= repeatDelayTicks && (s.heldTicks-repeatDelayTicks)%repeatEveryTicks == 0 {
		s.dispatch(trigrid.Event{Key: s.held, Kind: trigrid.KindRepeat})
	}
}

func (s *Session) dispatch(ev trigrid.Event) {
	if s.ctrl.Handle(ev) {
		s.needRender = true
	}
}

func mapKey(code hal.KeyCode) trigrid.Key {
	switch code {
	case hal.KeyUp:
		return trigrid.KeyUp
	case hal.KeyDown:
		return trigrid.KeyDown
	case hal.KeyLeft:
		return trigrid.KeyLeft
	case hal.KeyRight:
		return trigrid.KeyRight
	case hal.KeyOK:
		return trigrid.KeyOK
	case hal.KeyBack:
		return trigrid.KeyBack
	}
	return trigrid.KeyNone
}
