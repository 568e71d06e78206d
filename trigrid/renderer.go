package trigrid

// Renderer paints one full frame: it enumerates the grid, culls, draws the
// outline style selected by the config, mirrors the sampled pattern into
// every visible triangle and accumulates the frame statistics.
type Renderer struct {
	canvas Canvas
	stats  Stats
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Stats returns the metrics accumulated by the last RenderFrame.
func (r *Renderer) Stats() *Stats { return &r.stats }

// RenderFrame draws one complete frame for the given configuration and
// sample points. Frames are bounded and deterministic; nothing here can
// fail.
func (r *Renderer) RenderFrame(cfg Config, samples []Point) {
	c := r.canvas
	w, h := c.Size()
	vp := Viewport{W: w, H: h}
	st := &r.stats
	st.Reset()

	c.Clear()
	c.SetColor(ColorSet)

	if cfg.Side < MinSide {
		return
	}

	ref := Vertices(0, 0, cfg.Side, true)
	refCenter := Centroid(ref)
	st.Area = Area(ref)

	cols, rows := GridExtent(cfg.Side, vp)
	for col := 0; col < cols; col++ {
		for row := -rows; row < rows; row++ {
			right := PointingRight(col, row)
			v := Vertices(col, row, cfg.Side, right)
			if !Visible(v, vp) {
				continue
			}
			st.Visible++
			if FullyVisible(v, vp) {
				st.FullyVisible++
			} else {
				st.Partial++
			}

			// The two outline styles cover the same edge set; never
			// both in one frame.
			if cfg.ShowLines {
				if right {
					st.Lines += DrawDiagonalEdges(c, v)
				}
			} else {
				DrawTriangleOutline(c, v)
				st.Lines += 3
			}

			center := Centroid(v)
			for _, p := range samples {
				m := Mirror(p, refCenter, center)
				if m.X >= 0 && m.X < w && m.Y >= 0 && m.Y < h {
					c.DrawPoint(m.X, m.Y)
					st.MirroredPixels++
				}
			}

			if cfg.ShowCenters && center.X >= 0 && center.X < w && center.Y >= 0 && center.Y < h {
				c.FillDisc(center.X, center.Y, 1)
				st.Centers++
			}
		}
	}

	if cfg.ShowLines {
		st.Lines += DrawSeams(c, cfg.Side, cols, vp)
	}

	r.drawOverlay(cfg, vp)
}

// drawOverlay renders the stats readout into a cleared box at the top-right
// corner: cleared background, set text.
func (r *Renderer) drawOverlay(cfg Config, vp Viewport) {
	c := r.canvas
	c.SetColor(ColorClear)
	c.FillRect(vp.W-60, 0, 60, 10)
	c.SetColor(ColorSet)
	c.DrawText(vp.W-58, 8, r.stats.Overlay(cfg.ShowLines))
}
