package spritesheet

import (
	"fmt"
	"math"
	"time"
)

// Mode selects how frames are arranged on the sheet.
type Mode int

const (
	// ModeHorizontal lays all frames out in a single row.
	ModeHorizontal Mode = iota
	// ModeVertical lays all frames out in a single column.
	ModeVertical
	// ModeGrid lays frames out in rows of Options.Columns cells
	// (ceil(sqrt(n)) columns when Columns is 0).
	ModeGrid
)

func (m Mode) String() string {
	switch m {
	case ModeHorizontal:
		return "horizontal"
	case ModeVertical:
		return "vertical"
	case ModeGrid:
		return "grid"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name ("horizontal", "vertical", "grid") to a
// Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "horizontal":
		return ModeHorizontal, nil
	case "vertical":
		return ModeVertical, nil
	case "grid":
		return ModeGrid, nil
	}
	return 0, fmt.Errorf("spritesheet: unknown layout mode %q", s)
}

// Options configures the layout engine.
type Options struct {
	// Mode selects the arrangement. The zero value is ModeHorizontal.
	Mode Mode

	// Padding is the uniform gap in pixels between adjacent cells on both
	// axes. Padding is inserted only between cells, never as an outer
	// border.
	Padding int

	// Columns is the column count for ModeGrid; 0 selects
	// ceil(sqrt(frameCount)). Ignored for the other modes.
	Columns int

	// Scale resamples the finished sheet by this factor. 0 means 1
	// (native size). The atlas records the factor in meta.scale and its
	// coordinates are scaled to match.
	Scale float64
}

// normalized returns a copy of o with out-of-range fields clamped to the
// engine's invariants. A nil receiver yields the defaults.
func (o *Options) normalized() Options {
	var n Options
	if o != nil {
		n = *o
	}
	if n.Padding < 0 {
		n.Padding = 0
	}
	if n.Columns < 0 {
		n.Columns = 0
	}
	if n.Scale <= 0 {
		n.Scale = 1
	}
	return n
}

// Placement records where one frame was drawn on the sheet. W and H are
// the frame's intrinsic size, not the (possibly larger) cell size, so a
// consumer can crop exactly the drawn pixels.
type Placement struct {
	X, Y     int
	W, H     int
	Duration time.Duration
}

// grid is the resolved geometry of one layout run: the cell matrix shape,
// the uniform cell size, and the inter-cell padding.
type grid struct {
	cols, rows   int
	cellW, cellH int
	padding      int
}

// resolveGrid computes the cell matrix shape for n frames. n must be > 0.
// A single frame yields a 1x1 grid regardless of mode. Columns may exceed
// n, in which case trailing cells in the last row stay unused.
func resolveGrid(n int, o Options) grid {
	g := grid{padding: o.Padding}
	switch {
	case n == 1:
		g.cols, g.rows = 1, 1
	case o.Mode == ModeVertical:
		g.cols, g.rows = 1, n
	case o.Mode == ModeGrid:
		cols := o.Columns
		if cols <= 0 {
			cols = int(math.Ceil(math.Sqrt(float64(n))))
		}
		g.cols = cols
		g.rows = (n + cols - 1) / cols
	default:
		g.cols, g.rows = n, 1
	}
	return g
}

// maxCellSize returns the dimensions of the uniform cell: the maximum
// frame width and height across the sequence. Keying the cell to the
// largest patch keeps the sheet regular for players that expect
// fixed-size cells, at the cost of wasted space for smaller patches.
func maxCellSize(frames []Frame) (w, h int) {
	for i := range frames {
		if frames[i].Width > w {
			w = frames[i].Width
		}
		if frames[i].Height > h {
			h = frames[i].Height
		}
	}
	return w, h
}

// canvasSize returns the composite canvas dimensions. The (n-1)*padding
// term vanishes for single-row and single-column axes.
func (g grid) canvasSize() (w, h int) {
	w = g.cols*g.cellW + (g.cols-1)*g.padding
	h = g.rows*g.cellH + (g.rows-1)*g.padding
	return w, h
}

// cellOrigin returns the top-left pixel of the cell for the frame at
// position i. Cells are disjoint for any padding >= 0 by construction.
func (g grid) cellOrigin(i int) (x, y int) {
	col := i % g.cols
	row := i / g.cols
	return col * (g.cellW + g.padding), row * (g.cellH + g.padding)
}
