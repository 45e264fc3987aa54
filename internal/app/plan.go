package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/metrics"
)

// refreshPlan re-uploads the raster after the session changed.
func (a *App) refreshPlan() {
	if !a.planDirty && a.planLoaded {
		return
	}
	start := time.Now()
	img := rl.NewImageFromImage(a.plan.Render())
	metrics.ObserveRender("texture", time.Since(start))

	a.unloadPlan()
	a.planTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	a.planLoaded = true
	a.planDirty = false
}

func (a *App) unloadPlan() {
	if a.planLoaded {
		rl.UnloadTexture(a.planTex)
		a.planLoaded = false
	}
}

func (a *App) planDest(bounds rl.Rectangle) (rl.Rectangle, float32) {
	w, h := a.plan.Size()
	return fitRect(float32(w), float32(h), bounds)
}

// handlePlanInput forwards the mouse to the plan engine in surface pixels.
func (a *App) handlePlanInput(bounds rl.Rectangle) {
	if a.fields.editing() {
		return
	}
	dst, scale := a.planDest(bounds)
	mouse := rl.GetMousePosition()
	x, y := toSurface(mouse, dst, scale)
	inside := rl.CheckCollisionPointRec(mouse, dst)

	if a.planDrag {
		switch {
		case !inside:
			a.plan.PointerLeave()
			a.planDrag = false
		case rl.IsMouseButtonReleased(rl.MouseLeftButton):
			a.plan.PointerUp()
			a.planDrag = false
		default:
			a.plan.PointerMove(x, y)
		}
		return
	}

	if inside && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.plan.PointerDown(x, y)
		_, a.planDrag = a.plan.Dragging()
	}
}

func (a *App) drawPlan(bounds rl.Rectangle) {
	a.refreshPlan()
	dst, _ := a.planDest(bounds)
	src := rl.Rectangle{Width: float32(a.planTex.Width), Height: float32(a.planTex.Height)}
	rl.DrawTexturePro(a.planTex, src, dst, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(bounds, 1, colorBorder)
}
