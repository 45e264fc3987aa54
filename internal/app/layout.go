package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/model"
)

const (
	toolbarHeight = 44
	sidebarWidth  = 260
	inspectorW    = 220
	viewGap       = 8
)

// layout is the screen split for one frame.
type layout struct {
	Toolbar   rl.Rectangle
	Sidebar   rl.Rectangle
	Inspector rl.Rectangle
	Plan      rl.Rectangle
	Scene     rl.Rectangle
}

// computeLayout places the panels. A view hidden by the mode gets an empty
// rectangle; in split mode the plan sits left of the 3D scene.
func computeLayout(width, height float32, mode model.ViewMode) layout {
	l := layout{
		Toolbar:   rl.Rectangle{X: 0, Y: 0, Width: width, Height: toolbarHeight},
		Sidebar:   rl.Rectangle{X: 0, Y: toolbarHeight, Width: sidebarWidth, Height: height - toolbarHeight},
		Inspector: rl.Rectangle{X: width - inspectorW, Y: toolbarHeight, Width: inspectorW, Height: height - toolbarHeight},
	}
	content := rl.Rectangle{
		X:      sidebarWidth + viewGap,
		Y:      toolbarHeight + viewGap,
		Width:  width - sidebarWidth - inspectorW - 2*viewGap,
		Height: height - toolbarHeight - 2*viewGap,
	}
	switch mode {
	case model.View2D:
		l.Plan = content
	case model.View3D:
		l.Scene = content
	default:
		half := (content.Width - viewGap) / 2
		l.Plan = rl.Rectangle{X: content.X, Y: content.Y, Width: half, Height: content.Height}
		l.Scene = rl.Rectangle{X: content.X + half + viewGap, Y: content.Y, Width: half, Height: content.Height}
	}
	return l
}

// fitRect scales a w by h surface into bounds, keeping its aspect ratio
// and never enlarging it. It returns the destination and the scale.
func fitRect(w, h float32, bounds rl.Rectangle) (rl.Rectangle, float32) {
	if w <= 0 || h <= 0 {
		return rl.Rectangle{}, 0
	}
	s := bounds.Width / w
	if hs := bounds.Height / h; hs < s {
		s = hs
	}
	if s > 1 {
		s = 1
	}
	dst := rl.Rectangle{Width: w * s, Height: h * s}
	dst.X = bounds.X + (bounds.Width-dst.Width)/2
	dst.Y = bounds.Y + (bounds.Height-dst.Height)/2
	return dst, s
}

// toSurface maps a window point into plan pixel coordinates.
func toSurface(p rl.Vector2, dst rl.Rectangle, scale float32) (float64, float64) {
	if scale == 0 {
		return 0, 0
	}
	return float64((p.X - dst.X) / scale), float64((p.Y - dst.Y) / scale)
}
