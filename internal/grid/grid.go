// Where: cli/internal/grid/grid.go
// What: Checkerboard thread pattern generator.
// Why: Produce the standard diagonal-lattice threads document without hand editing.
package grid

import (
	"fmt"

	"github.com/stitchworks/embroidery-mesh/cli/internal/threads"
)

// Options controls the pattern dimensions. A unit is a square block of
// UnitSize cells holding nine diagonal threads.
type Options struct {
	Cols     int
	Rows     int
	UnitSize int
}

// DefaultOptions returns the canonical 6x8 checkerboard of 5x5 units.
func DefaultOptions() Options {
	return Options{Cols: 6, Rows: 8, UnitSize: 5}
}

// Normalize fills unset fields with defaults and rejects nonsense.
func (o Options) Normalize() (Options, error) {
	defaults := DefaultOptions()
	if o.Cols == 0 {
		o.Cols = defaults.Cols
	}
	if o.Rows == 0 {
		o.Rows = defaults.Rows
	}
	if o.UnitSize == 0 {
		o.UnitSize = defaults.UnitSize
	}
	if o.Cols < 1 || o.Rows < 1 || o.UnitSize < 2 {
		return Options{}, fmt.Errorf("invalid grid dimensions: %+v", o)
	}
	return o, nil
}

// basePaths is the nine-thread diagonal lattice anchored at the upper
// left corner of a 5x5 unit.
var basePaths = []threads.Path{
	{Start: threads.Point{X: 0, Y: 1}, End: threads.Point{X: 1, Y: 0}},
	{Start: threads.Point{X: 0, Y: 2}, End: threads.Point{X: 2, Y: 0}},
	{Start: threads.Point{X: 0, Y: 3}, End: threads.Point{X: 3, Y: 0}},
	{Start: threads.Point{X: 0, Y: 4}, End: threads.Point{X: 4, Y: 0}},
	{Start: threads.Point{X: 0, Y: 5}, End: threads.Point{X: 5, Y: 0}},
	{Start: threads.Point{X: 1, Y: 5}, End: threads.Point{X: 5, Y: 1}},
	{Start: threads.Point{X: 2, Y: 5}, End: threads.Point{X: 5, Y: 2}},
	{Start: threads.Point{X: 3, Y: 5}, End: threads.Point{X: 5, Y: 3}},
	{Start: threads.Point{X: 4, Y: 5}, End: threads.Point{X: 5, Y: 4}},
}

// unitPaths returns the nine lattice paths for one unit, mirrored by
// the unit's row/col parity and scaled to the unit size.
func unitPaths(rowParity, colParity, unitSize int) []threads.Path {
	scale := float64(unitSize) / 5
	size := float64(unitSize)
	paths := make([]threads.Path, 0, len(basePaths))
	for _, base := range basePaths {
		p := threads.Path{
			Start: threads.Point{X: base.Start.X * scale, Y: base.Start.Y * scale},
			End:   threads.Point{X: base.End.X * scale, Y: base.End.Y * scale},
		}
		switch {
		case rowParity == 0 && colParity == 1:
			// Upper right to lower left: mirror horizontally.
			p.Start.X = size - p.Start.X
			p.End.X = size - p.End.X
		case rowParity == 1 && colParity == 0:
			// Lower left to upper right: mirror vertically.
			p.Start.Y = size - p.Start.Y
			p.End.Y = size - p.End.Y
		}
		paths = append(paths, p)
	}
	return paths
}

// Generate builds the checkerboard pattern as a threads document, one
// thread per unit, colors alternating red and blue.
func Generate(opts Options) (threads.Document, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return threads.Document{}, err
	}

	var doc threads.Document
	for row := 0; row < opts.Rows; row++ {
		for col := 0; col < opts.Cols; col++ {
			color := "red"
			if (row+col)%2 != 0 {
				color = "blue"
			}
			paths := unitPaths(row%2, col%2, opts.UnitSize)
			for i := range paths {
				paths[i].Start.X += float64(col * opts.UnitSize)
				paths[i].Start.Y += float64(row * opts.UnitSize)
				paths[i].End.X += float64(col * opts.UnitSize)
				paths[i].End.Y += float64(row * opts.UnitSize)
			}
			doc.Threads = append(doc.Threads, threads.Thread{Color: color, Paths: paths})
		}
	}
	return doc, nil
}
