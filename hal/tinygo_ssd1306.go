//go:build tinygo

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *oledFramebuffer
	kbd    *buttonKeyboard
}

// New returns a Pico (RP2040) HAL implementation driving a 128x64 SSD1306
// OLED over I2C0 and six push buttons.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// I2C:  I2C0 on GP4 (SDA) / GP5 (SCL), 400kHz.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	})

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:   128,
		Height:  64,
		Address: 0x3C,
	})
	dev.ClearDisplay()

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newOLEDFramebuffer(&dev, 128, 64),
		kbd:    newButtonKeyboard(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }

type tinyGoDisplay struct {
	fb *oledFramebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd *buttonKeyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

// oledFramebuffer keeps a mono shadow buffer and pushes it to the SSD1306 on
// Present.
type oledFramebuffer struct {
	dev    *ssd1306.Device
	width  int
	height int
	buf    []byte
}

func newOLEDFramebuffer(dev *ssd1306.Device, width, height int) *oledFramebuffer {
	return &oledFramebuffer{
		dev:    dev,
		width:  width,
		height: height,
		buf:    make([]byte, width*height),
	}
}

func (f *oledFramebuffer) Width() int          { return f.width }
func (f *oledFramebuffer) Height() int         { return f.height }
func (f *oledFramebuffer) Format() PixelFormat { return PixelFormatMono8 }
func (f *oledFramebuffer) StrideBytes() int    { return f.width }
func (f *oledFramebuffer) Buffer() []byte      { return f.buf }

func (f *oledFramebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *oledFramebuffer) Present() error {
	on := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	off := color.RGBA{A: 0xFF}
	for y := 0; y < f.height; y++ {
		row := y * f.width
		for x := 0; x < f.width; x++ {
			c := off
			if f.buf[row+x] != 0 {
				c = on
			}
			f.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	return f.dev.Display()
}

type buttonPin struct {
	pin  machine.Pin
	code KeyCode
	down bool
}

// buttonKeyboard polls six active-low buttons and emits edge events.
type buttonKeyboard struct {
	ch   chan KeyEvent
	pins []buttonPin
}

func newButtonKeyboard() *buttonKeyboard {
	k := &buttonKeyboard{
		ch: make(chan KeyEvent, 16),
		pins: []buttonPin{
			{pin: machine.GP10, code: KeyUp},
			{pin: machine.GP11, code: KeyDown},
			{pin: machine.GP12, code: KeyLeft},
			{pin: machine.GP13, code: KeyRight},
			{pin: machine.GP14, code: KeyOK},
			{pin: machine.GP15, code: KeyBack},
		},
	}
	for i := range k.pins {
		k.pins[i].pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go k.run()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *buttonKeyboard) run() {
	for {
		for i := range k.pins {
			p := &k.pins[i]
			down := !p.pin.Get()
			if down == p.down {
				continue
			}
			p.down = down
			select {
			case k.ch <- KeyEvent{Code: p.code, Press: down}:
			default:
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
