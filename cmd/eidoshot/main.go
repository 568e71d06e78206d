//go:build !tinygo

// Command eidoshot renders one frame of the triangular grid into a PNG,
// without opening a window. Handy for previewing side-length/pattern
// combinations and for generating comparison images while debugging the
// renderer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fgreil/mitzi-karl-eido/app"
	"github.com/fgreil/mitzi-karl-eido/hal"
	"github.com/fgreil/mitzi-karl-eido/trigrid"
)

func main() {
	var (
		side    = flag.Int("side", trigrid.MinSide, "Triangle side length in pixels.")
		pixels  = flag.Int("pixels", 40, "Requested random pattern pixels.")
		centers = flag.Bool("centers", true, "Draw center markers.")
		lines   = flag.Bool("lines", false, "Draw solid deduplicated grid lines.")
		seed    = flag.Int64("seed", 1, "Sampler seed.")
		out     = flag.String("o", "eido.png", "Output PNG path.")
	)
	flag.Parse()

	if err := run(*side, *pixels, *centers, *lines, *seed, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(side, pixels int, centers, lines bool, seed int64, out string) error {
	if side < trigrid.MinSide || side > trigrid.MaxSide {
		return fmt.Errorf("side %d out of range [%d, %d]", side, trigrid.MinSide, trigrid.MaxSide)
	}

	fb := hal.NewMonoFramebuffer(trigrid.ScreenWidth, trigrid.ScreenHeight)
	canvas := app.NewCanvas(fb)
	renderer := trigrid.NewRenderer(canvas)

	sampler := trigrid.NewSampler(seed)
	sampler.Regenerate(side, pixels)

	cfg := trigrid.Config{
		Side:        side,
		NumPixels:   pixels,
		ShowCenters: centers,
		ShowLines:   lines,
		Running:     true,
	}
	renderer.RenderFrame(cfg, sampler.Points())

	st := renderer.Stats()
	fmt.Printf("triangles=%d (full=%d partial=%d) lines=%d area=%d pattern=%d\n",
		st.Visible, st.FullyVisible, st.Partial, st.Lines, st.Area, len(sampler.Points()))

	return writePNG(out, fb)
}

func writePNG(path string, fb *hal.MonoFramebuffer) error {
	img := image.NewGray(image.Rect(0, 0, fb.Width(), fb.Height()))
	buf := fb.Buffer()
	for i, v := range buf {
		if v != 0 {
			img.Pix[i] = 0xFF
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
