package spritesheet

import (
	"image"
	"time"
)

// Frame is one decoded still image from a source animation: a pixel patch
// with its intrinsic size, its position within the original animation
// canvas, and its display duration.
//
// Frames are produced once by an adapter and are immutable thereafter.
// The layout engine only reads them.
type Frame struct {
	// Index is the frame's ordinal in the source animation, origin 0.
	// It is stable across caller-side removal: removing a frame does not
	// renumber the rest.
	Index int

	// Pix holds the patch pixels in RGBA8888 order, Width*Height*4 bytes,
	// row-major with no per-row padding.
	Pix []uint8

	// Width and Height are the intrinsic size of this frame's patch,
	// which may be smaller than the animation's logical canvas when the
	// encoder stored only the changed region.
	Width  int
	Height int

	// OffsetLeft and OffsetTop are the patch's position within the
	// original animation canvas. The layout engine does not use them for
	// placement; each patch is treated as a standalone image.
	OffsetLeft int
	OffsetTop  int

	// Duration is the display time of this frame in its source animation.
	Duration time.Duration
}

// Bounds returns the patch's rectangle within the original animation
// canvas.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(f.OffsetLeft, f.OffsetTop, f.OffsetLeft+f.Width, f.OffsetTop+f.Height)
}

// image wraps the frame's pixels as an *image.NRGBA without copying.
// The returned image shares Pix and must not be written to.
func (f *Frame) image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// RemoveFrame returns a copy of frames with the frame at position i
// removed. Remaining frames keep their original Index values; placement
// stays positional. Out-of-range i returns the input unchanged.
func RemoveFrame(frames []Frame, i int) []Frame {
	if i < 0 || i >= len(frames) {
		return frames
	}
	out := make([]Frame, 0, len(frames)-1)
	out = append(out, frames[:i]...)
	return append(out, frames[i+1:]...)
}
