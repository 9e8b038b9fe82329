package assets

import (
	"image"

	"golang.org/x/image/draw"
)

// Cover scales src to fill exactly w by h pixels, cropping the overflow
// evenly from both sides, the way a cover-fit image behaves. A non-positive
// size gives an empty image.
func Cover(src image.Image, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src == nil {
		return dst
	}
	sb := src.Bounds()
	if sb.Empty() {
		return dst
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverCrop(sb, w, h), draw.Src, nil)
	return dst
}

// coverCrop returns the centered part of b that has the aspect ratio w:h.
func coverCrop(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	// Compare sw/sh with w/h without floating point.
	switch {
	case sw*h > w*sh:
		cw := max(sh*w/h, 1)
		x := b.Min.X + (sw-cw)/2
		return image.Rect(x, b.Min.Y, x+cw, b.Max.Y)
	case sw*h < w*sh:
		ch := max(sw*h/w, 1)
		y := b.Min.Y + (sh-ch)/2
		return image.Rect(b.Min.X, y, b.Max.X, y+ch)
	default:
		return b
	}
}
