package trigrid

// Color is the binary drawing color of a monochrome canvas.
type Color uint8

const (
	ColorClear Color = iota
	ColorSet
)

// Canvas is a minimal monochrome drawing surface.
//
// Implementations must clip out-of-bounds coordinates. Drawing calls take
// effect immediately; the engine does not buffer.
type Canvas interface {
	Size() (w, h int)
	SetColor(c Color)
	Clear()
	DrawPoint(x, y int)
	DrawLine(x0, y0, x1, y1 int)
	FillDisc(cx, cy, r int)
	FillRect(x, y, w, h int)
	DrawText(x, y int, s string)
}
