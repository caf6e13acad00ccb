package spritesheet

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
)

// Errors returned by the layout engine.
var (
	// ErrEmptyInput is returned when Generate is given zero frames. A
	// spritesheet of zero frames has no sensible canvas size.
	ErrEmptyInput = errors.New("spritesheet: no frames")

	// ErrRenderSurface is returned when the composite canvas cannot be
	// allocated because its dimensions exceed the supported limit.
	ErrRenderSurface = errors.New("spritesheet: render surface too large")
)

// maxCanvasPixels caps the composite canvas at 2^27 pixels (512 MiB of
// RGBA). Beyond that, allocation failure is an environment problem, not
// a layout problem.
const maxCanvasPixels = 1 << 27

// Sheet is the result of one layout run: the composite raster, its
// geometry, and one placement per input frame in input order.
type Sheet struct {
	// Width and Height are the pixel dimensions of the composite canvas
	// (after scaling, when Options.Scale != 1).
	Width  int
	Height int

	// Placements has one entry per input frame, matched by position.
	Placements []Placement

	// Image is the composite canvas. Fully transparent outside the drawn
	// patches.
	Image *image.NRGBA

	// PNG holds the losslessly encoded raster.
	PNG []byte

	// Handle is a dereferenceable in-memory URL for PNG. The caller must
	// Release it once the sheet is superseded.
	Handle *Handle

	scale float64
}

// Generate computes a spritesheet for frames under opts. It is a pure
// function of its inputs: no state is carried between invocations, and
// identical inputs produce identical geometry and pixel content.
//
// A nil opts selects the defaults (horizontal, no padding, native scale).
// Generate never mutates the frames.
func Generate(frames []Frame, opts *Options) (*Sheet, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyInput
	}
	o := opts.normalized()

	g := resolveGrid(len(frames), o)
	g.cellW, g.cellH = maxCellSize(frames)
	width, height := g.canvasSize()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("spritesheet: degenerate canvas %dx%d", width, height)
	}
	if int64(width)*int64(height) > maxCanvasPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrRenderSurface, width, height)
	}

	// NewNRGBA zero-fills, so the canvas starts fully transparent and a
	// patch smaller than its cell leaves the remainder transparent.
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	placements := make([]Placement, len(frames))
	for i := range frames {
		f := &frames[i]
		x, y := g.cellOrigin(i)
		blitPatch(canvas, f, x, y)
		placements[i] = Placement{
			X:        x,
			Y:        y,
			W:        f.Width,
			H:        f.Height,
			Duration: f.Duration,
		}
	}

	if o.Scale != 1 {
		width = scaleDim(width, o.Scale)
		height = scaleDim(height, o.Scale)
		if int64(width)*int64(height) > maxCanvasPixels {
			return nil, fmt.Errorf("%w: %dx%d", ErrRenderSurface, width, height)
		}
		canvas = resample(canvas, width, height)
		// Rectangles are derived from their scaled edges, not from
		// independently rounded origin and size. Rounding is monotone, so
		// edge-scaled rectangles stay disjoint and keep tiling the
		// resampled raster even when the factor is fractional.
		for i := range placements {
			p := &placements[i]
			x2 := scaleEdge(p.X+p.W, o.Scale)
			y2 := scaleEdge(p.Y+p.H, o.Scale)
			p.X = scaleEdge(p.X, o.Scale)
			p.Y = scaleEdge(p.Y, o.Scale)
			p.W = x2 - p.X
			p.H = y2 - p.Y
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("spritesheet: encoding raster: %w", err)
	}

	return &Sheet{
		Width:      width,
		Height:     height,
		Placements: placements,
		Image:      canvas,
		PNG:        buf.Bytes(),
		Handle:     newHandle(buf.Bytes()),
		scale:      o.Scale,
	}, nil
}

// scaleDim scales a canvas dimension, rounding to nearest. Non-zero
// inputs never collapse to zero.
func scaleDim(v int, scale float64) int {
	s := scaleEdge(v, scale)
	if s == 0 && v > 0 {
		s = 1
	}
	return s
}

// scaleEdge maps a pixel coordinate through the scale factor, rounding
// to nearest.
func scaleEdge(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}
