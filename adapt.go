package spritesheet

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"time"

	_ "github.com/deepteams/webp" // registers the animation frame decoder
	"github.com/deepteams/webp/animation"
)

// FromGIF normalizes a decoded GIF animation into canonical frames.
// Each paletted frame's bounds offset becomes the frame's canvas offsets,
// and the GIF delay (hundredths of a second) becomes a time.Duration.
// Index is assigned by decode order. A GIF with no frames yields an empty
// sequence; rejecting that is the engine's job, not the adapter's.
func FromGIF(g *gif.GIF) []Frame {
	frames := make([]Frame, 0, len(g.Image))
	for i, src := range g.Image {
		b := src.Bounds()
		patch := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(patch, patch.Bounds(), src, b.Min, draw.Src)

		var delay int
		if i < len(g.Delay) {
			delay = g.Delay[i]
		}
		frames = append(frames, Frame{
			Index:      i,
			Pix:        patch.Pix,
			Width:      b.Dx(),
			Height:     b.Dy(),
			OffsetLeft: b.Min.X,
			OffsetTop:  b.Min.Y,
			Duration:   time.Duration(delay) * 10 * time.Millisecond,
		})
	}
	return frames
}

// FromWebP normalizes a decoded animated WebP into canonical frames.
// Frames whose pixels have not been decoded yet are decoded via the
// animation package first; decoder failures are reported upward
// unchanged.
func FromWebP(anim *animation.Animation) ([]Frame, error) {
	if err := anim.DecodeFrames(); err != nil {
		return nil, fmt.Errorf("spritesheet: decoding WebP frames: %w", err)
	}
	frames := make([]Frame, 0, len(anim.Frames))
	for i := range anim.Frames {
		f := &anim.Frames[i]
		if f.Image == nil {
			return nil, fmt.Errorf("spritesheet: WebP frame %d has no pixel data", i)
		}
		patch := normalizePatch(f.Image)
		b := patch.Bounds()
		frames = append(frames, Frame{
			Index:      i,
			Pix:        patch.Pix,
			Width:      b.Dx(),
			Height:     b.Dy(),
			OffsetLeft: f.OffsetX,
			OffsetTop:  f.OffsetY,
			Duration:   f.Duration,
		})
	}
	return frames, nil
}

// FromImages normalizes a still-image sequence into canonical frames.
// durations may be shorter than imgs; missing entries default to zero.
func FromImages(imgs []image.Image, durations []time.Duration) []Frame {
	frames := make([]Frame, 0, len(imgs))
	for i, src := range imgs {
		patch := normalizePatch(src)
		b := patch.Bounds()
		var d time.Duration
		if i < len(durations) {
			d = durations[i]
		}
		frames = append(frames, Frame{
			Index:    i,
			Pix:      patch.Pix,
			Width:    b.Dx(),
			Height:   b.Dy(),
			Duration: d,
		})
	}
	return frames
}

// normalizePatch converts src to an origin-anchored *image.NRGBA with a
// packed stride, so Frame.Pix is exactly Width*Height*4 bytes. An NRGBA
// image that is already in that shape passes through without copying.
func normalizePatch(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if nrgba, ok := src.(*image.NRGBA); ok {
		if b.Min == (image.Point{}) && nrgba.Stride == b.Dx()*4 {
			return nrgba
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
