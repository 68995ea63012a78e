// Where: cli/internal/mesh/render.go
// What: Mesh grid PNG renderer.
// Why: Draw the stitch grid and threads exactly as the original generator did.
package mesh

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/stitchworks/embroidery-mesh/cli/internal/threads"
)

// Options controls mesh geometry. Zero values fall back to the
// defaults of the original generator via Normalize.
type Options struct {
	Size        int // cells per side
	CellSize    int // cell edge in pixels
	LineWidth   int // grid line width in pixels
	ThreadWidth int // thread line width in pixels
	Padding     int // border around the grid in pixels
}

// DefaultOptions returns the canonical 40x40 mesh geometry.
func DefaultOptions() Options {
	return Options{
		Size:        40,
		CellSize:    20,
		LineWidth:   1,
		ThreadWidth: 3,
		Padding:     20,
	}
}

// Normalize fills unset fields with defaults and rejects nonsense.
func (o Options) Normalize() (Options, error) {
	defaults := DefaultOptions()
	if o.Size == 0 {
		o.Size = defaults.Size
	}
	if o.CellSize == 0 {
		o.CellSize = defaults.CellSize
	}
	if o.LineWidth == 0 {
		o.LineWidth = defaults.LineWidth
	}
	if o.ThreadWidth == 0 {
		o.ThreadWidth = defaults.ThreadWidth
	}
	if o.Padding == 0 {
		o.Padding = defaults.Padding
	}
	if o.Size < 1 || o.CellSize < 1 || o.LineWidth < 1 || o.ThreadWidth < 1 || o.Padding < 0 {
		return Options{}, fmt.Errorf("invalid mesh geometry: %+v", o)
	}
	return o, nil
}

// GridExtent returns the edge length of the grid area in pixels,
// including the final closing line.
func (o Options) GridExtent() int {
	return o.Size*o.CellSize + 1
}

// ImageExtent returns the full image edge length in pixels.
func (o Options) ImageExtent() int {
	return o.GridExtent() + 2*o.Padding
}

// Render draws the mesh grid with the document's threads. Each thread
// segment runs from the center of its start cell to the center of its
// end cell.
func Render(doc threads.Document, opts Options) (*image.RGBA, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	extent := opts.ImageExtent()
	img := image.NewRGBA(image.Rect(0, 0, extent, extent))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	black := color.RGBA{A: 0xFF}
	gridEnd := opts.Padding + opts.GridExtent() - 1

	for i := 0; i <= opts.Size; i++ {
		offset := opts.Padding + i*opts.CellSize
		// Vertical line.
		fillRect(img, offset, opts.Padding, offset+opts.LineWidth-1, gridEnd, black)
		// Horizontal line.
		fillRect(img, opts.Padding, offset, gridEnd, offset+opts.LineWidth-1, black)
	}

	// Stitch points at every intersection.
	for i := 0; i <= opts.Size; i++ {
		for j := 0; j <= opts.Size; j++ {
			x := float64(opts.Padding + i*opts.CellSize)
			y := float64(opts.Padding + j*opts.CellSize)
			fillCircle(img, x, y, 1.5, black)
		}
	}

	for i, thread := range doc.Threads {
		c, err := ParseColor(thread.Color)
		if err != nil {
			return nil, fmt.Errorf("thread %d: %w", i, err)
		}
		for _, seg := range thread.Segments() {
			drawSegment(img, seg, c, opts)
		}
	}

	return img, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mesh image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encode mesh image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mesh image: %w", err)
	}
	return nil
}

func drawSegment(img *image.RGBA, seg threads.Path, c color.RGBA, opts Options) {
	half := float64(opts.CellSize) / 2
	x0 := float64(opts.Padding) + seg.Start.X*float64(opts.CellSize) + half
	y0 := float64(opts.Padding) + seg.Start.Y*float64(opts.CellSize) + half
	x1 := float64(opts.Padding) + seg.End.X*float64(opts.CellSize) + half
	y1 := float64(opts.Padding) + seg.End.Y*float64(opts.CellSize) + half
	drawLine(img, x0, y0, x1, y1, float64(opts.ThreadWidth)/2, c)
}

// drawLine stamps circles along the segment. Step density is twice the
// pixel length so the stroke has no gaps at any angle.
func drawLine(img *image.RGBA, x0, y0, x1, y1, radius float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Hypot(dx, dy)*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fillCircle(img, x0+dx*t, y0+dy*t, radius, c)
	}
}

func fillCircle(img *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= radius {
				setPixel(img, x, y, c)
			}
		}
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			setPixel(img, x, y, c)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}
