//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// poll translates the desktop keyboard into the six-button device contract:
// arrows, Enter (OK) and Escape (Back). Only edges are emitted; hold
// classification (repeat, long press) is session-side.
func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	bind := func(key ebiten.Key, code KeyCode) {
		if inpututil.IsKeyJustPressed(key) {
			emit(code, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			emit(code, false)
		}
	}

	bind(ebiten.KeyArrowUp, KeyUp)
	bind(ebiten.KeyArrowDown, KeyDown)
	bind(ebiten.KeyArrowLeft, KeyLeft)
	bind(ebiten.KeyArrowRight, KeyRight)
	bind(ebiten.KeyEnter, KeyOK)
	bind(ebiten.KeySpace, KeyOK)
	bind(ebiten.KeyEscape, KeyBack)
	bind(ebiten.KeyBackspace, KeyBack)
}
