// Package plan2d draws the top-down floor plan and turns pointer input on
// that plan into selection and move events.
package plan2d

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"

	"roomdesigner/internal/model"
)

// Scale is the number of pixels per room unit.
const Scale = 20.0

const (
	wallWidth      = 8.0
	selectionWidth = 2.0
	labelMax       = 8
)

var (
	gridColor      = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	selectionColor = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	labelColor     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// SurfaceSize returns the plan size in pixels: room length across, room
// width down.
func SurfaceSize(room model.RoomSettings) (w, h int) {
	return int(math.Ceil(room.Length * Scale)), int(math.Ceil(room.Width * Scale))
}

// PixelRect is an item footprint in plan pixels.
type PixelRect struct {
	X, Y, W, H float64
}

func (r PixelRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r PixelRect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Footprint maps an item to its rectangle on the plan.
func Footprint(it model.FurnitureItem) PixelRect {
	w, h := it.Scale.X*Scale, it.Scale.Z*Scale
	return PixelRect{
		X: it.Position.X*Scale - w/2,
		Y: it.Position.Z*Scale - h/2,
		W: w,
		H: h,
	}
}

// Label is the text drawn on an item: its type, cut to eight characters.
func Label(t model.FurnitureType) string {
	r := []rune(string(t))
	if len(r) <= labelMax {
		return string(t)
	}
	return string(r[:labelMax]) + ".."
}

// Render draws the full plan. It has no side effects and the same inputs
// always produce the same pixels.
func Render(room model.RoomSettings, items []model.FurnitureItem, selectedID string) *image.RGBA {
	w, h := SurfaceSize(room)
	dc := gg.NewContext(w, h)

	dc.SetColor(model.HexOrBlack(room.FloorColor))
	dc.Clear()

	dc.SetColor(model.HexOrBlack(room.WallColor))
	dc.SetLineWidth(wallWidth)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Stroke()

	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for x := 0.0; x <= float64(w); x += Scale {
		dc.DrawLine(x, 0, x, float64(h))
	}
	for y := 0.0; y <= float64(h); y += Scale {
		dc.DrawLine(0, y, float64(w), y)
	}
	dc.Stroke()

	for _, it := range items {
		r := Footprint(it)

		if it.ID == selectedID {
			dc.SetColor(selectionColor)
			dc.SetLineWidth(selectionWidth)
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			dc.Stroke()
		}

		dc.SetColor(model.HexOrBlack(it.Color))
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		dc.Fill()

		cx, cy := r.Center()
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(Label(it.Type), cx, cy, 0.5, 0.5)
	}

	return dc.Image().(*image.RGBA)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
