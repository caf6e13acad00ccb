package spritesheet

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// blitPatch copies a frame's pixels onto the canvas with the patch's
// top-left pixel at (x, y). The patch is written as-is: no scaling, no
// centering, no blending. Rows are copied wholesale; the rectangle is
// clipped to the canvas bounds.
func blitPatch(dst *image.NRGBA, f *Frame, x, y int) {
	w, h := f.Width, f.Height
	db := dst.Bounds()
	if x+w > db.Max.X {
		w = db.Max.X - x
	}
	if y+h > db.Max.Y {
		h = db.Max.Y - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	srcStride := f.Width * 4
	for row := 0; row < h; row++ {
		srcOff := row * srcStride
		dstOff := (y+row)*dst.Stride + x*4
		copy(dst.Pix[dstOff:dstOff+w*4], f.Pix[srcOff:srcOff+w*4])
	}
}

// resample scales src to w x h. Upscales use nearest-neighbor so pixel
// art stays crisp; downscales use Catmull-Rom to avoid aliasing.
func resample(src *image.NRGBA, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	var kernel xdraw.Interpolator = xdraw.CatmullRom
	if w >= src.Bounds().Dx() {
		kernel = xdraw.NearestNeighbor
	}
	kernel.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
