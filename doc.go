// Package spritesheet packs the frames of an animated image into a single
// composite raster ("spritesheet") plus a frame atlas describing each
// frame's placement and timing.
//
// The package deals with already-decoded frames only: adapters normalize
// decoder output (GIF via image/gif, animated WebP via
// github.com/deepteams/webp) into the canonical Frame representation, and
// the layout engine is a pure function from a frame sequence and layout
// options to a Sheet.
//
// Frames are placed into a uniform cell grid sized to the largest frame.
// Three layout modes are supported: a single row, a single column, or a
// grid with a fixed or automatic column count. The composite raster is
// encoded as PNG (lossless, alpha-preserving) and exposed both as raw
// bytes and as a releasable in-memory handle.
//
// Basic usage:
//
//	frames := spritesheet.FromGIF(g)
//	sheet, err := spritesheet.Generate(frames, &spritesheet.Options{
//		Mode:    spritesheet.ModeGrid,
//		Padding: 2,
//	})
package spritesheet
