package assets

import (
	"fmt"
	"image"
	"image/color"

	"git.sr.ht/~sbinet/gg"
)

// Built-in image refs. They are drawn on demand so the binary ships no image
// files and the page works before any content is configured.
const (
	BuiltinBefore = "builtin:before"
	BuiltinAfter  = "builtin:after"
	BuiltinLogo   = "builtin:logo"
)

const (
	sceneWidth  = 320
	sceneHeight = 180
	logoWidth   = 96
	logoHeight  = 32
)

type painter func(dc *gg.Context)

var builtins = map[string]struct {
	w, h  int
	paint painter
}{
	BuiltinBefore: {sceneWidth, sceneHeight, paintBefore},
	BuiltinAfter:  {sceneWidth, sceneHeight, paintAfter},
	BuiltinLogo:   {logoWidth, logoHeight, paintLogo},
}

// IsBuiltin reports whether ref names a built-in image.
func IsBuiltin(ref string) bool {
	_, ok := builtins[ref]
	return ok
}

// Builtin draws the named built-in image.
func Builtin(ref string) (image.Image, error) {
	b, ok := builtins[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, ref)
	}
	dc := gg.NewContext(b.w, b.h)
	b.paint(dc)
	return dc.Image(), nil
}

// paintBefore draws an empty, unfinished room.
func paintBefore(dc *gg.Context) {
	w, h := float64(sceneWidth), float64(sceneHeight)
	floor := h * 0.72

	dc.SetHexColor("#8a8a86")
	dc.Clear()

	// Bare concrete floor
	dc.SetHexColor("#5b5a57")
	dc.DrawRectangle(0, floor, w, h-floor)
	dc.Fill()

	// Window with no frame
	dc.SetHexColor("#b9c4c9")
	dc.DrawRectangle(w*0.12, h*0.18, w*0.22, h*0.32)
	dc.Fill()

	// Exposed pipe along the wall
	dc.SetHexColor("#4a4947")
	dc.SetLineWidth(4)
	dc.DrawLine(w*0.55, 0, w*0.55, floor)
	dc.Stroke()

	// A stack of boxes
	dc.SetHexColor("#a07f55")
	dc.DrawRectangle(w*0.66, floor-40, 48, 40)
	dc.Fill()
	dc.SetHexColor("#8c6d46")
	dc.DrawRectangle(w*0.70, floor-68, 34, 28)
	dc.Fill()
}

// paintAfter draws the same room once designed.
func paintAfter(dc *gg.Context) {
	w, h := float64(sceneWidth), float64(sceneHeight)
	floor := h * 0.72

	wall := gg.NewLinearGradient(0, 0, 0, floor)
	wall.AddColorStop(0, color.RGBA{0xf4, 0xe9, 0xdc, 0xff})
	wall.AddColorStop(1, color.RGBA{0xe2, 0xcf, 0xb8, 0xff})
	dc.SetFillStyle(wall)
	dc.DrawRectangle(0, 0, w, floor)
	dc.Fill()

	// Oak floor
	dc.SetHexColor("#b07a47")
	dc.DrawRectangle(0, floor, w, h-floor)
	dc.Fill()
	dc.SetHexColor("#9a6a3c")
	for x := 0.0; x < w; x += 40 {
		dc.DrawLine(x, floor, x+20, h)
	}
	dc.SetLineWidth(1)
	dc.Stroke()

	// Framed window with sky
	dc.SetHexColor("#ffffff")
	dc.DrawRectangle(w*0.12-4, h*0.18-4, w*0.22+8, h*0.32+8)
	dc.Fill()
	sky := gg.NewLinearGradient(0, h*0.18, 0, h*0.5)
	sky.AddColorStop(0, color.RGBA{0x7f, 0xb8, 0xe6, 0xff})
	sky.AddColorStop(1, color.RGBA{0xc9, 0xe4, 0xf5, 0xff})
	dc.SetFillStyle(sky)
	dc.DrawRectangle(w*0.12, h*0.18, w*0.22, h*0.32)
	dc.Fill()

	// Sofa
	dc.SetHexColor("#2f5d62")
	dc.DrawRoundedRectangle(w*0.48, floor-44, 120, 44, 10)
	dc.Fill()
	dc.SetHexColor("#3e7a80")
	dc.DrawRoundedRectangle(w*0.48+8, floor-30, 104, 22, 6)
	dc.Fill()

	// Plant
	dc.SetHexColor("#c7653c")
	dc.DrawRectangle(w*0.9-10, floor-22, 20, 22)
	dc.Fill()
	dc.SetHexColor("#4f8a3c")
	dc.DrawCircle(w*0.9, floor-38, 18)
	dc.Fill()

	// Pendant lamp
	dc.SetHexColor("#333333")
	dc.SetLineWidth(2)
	dc.DrawLine(w*0.66, 0, w*0.66, h*0.2)
	dc.Stroke()
	dc.SetHexColor("#f2c14e")
	dc.DrawCircle(w*0.66, h*0.24, 10)
	dc.Fill()
}

// paintLogo draws the white box mark.
func paintLogo(dc *gg.Context) {
	w, h := float64(logoWidth), float64(logoHeight)

	dc.SetHexColor("#1e1e1e")
	dc.Clear()

	dc.SetHexColor("#f8f7f7")
	dc.DrawRoundedRectangle(w*0.35, h*0.12, w*0.3, h*0.76, 4)
	dc.Fill()
	dc.SetHexColor("#666666")
	dc.DrawRectangle(w*0.5-1, h*0.12, 2, h*0.76)
	dc.Fill()
}
