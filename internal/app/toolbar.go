package app

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/model"
	"roomdesigner/internal/scene3d"
)

var viewModes = []struct {
	mode  model.ViewMode
	label string
}{
	{model.View2D, "2D"},
	{model.View3D, "3D"},
	{model.ViewSplit, "Split"},
}

func (a *App) drawToolbar(bounds rl.Rectangle) {
	rl.DrawRectangleRec(bounds, colorBgPanel)
	rl.DrawLine(0, int32(bounds.Height), int32(bounds.Width), int32(bounds.Height), colorBorder)

	st := a.designer.State()
	y := bounds.Y + 8
	h := bounds.Height - 16

	if a.fields.draw(fieldName, rl.Rectangle{X: 12, Y: y, Width: 220, Height: h}, false) {
		a.report(a.designer.Rename(a.ctx, a.fields.get(fieldName)), "")
		a.fields.values[fieldName] = a.designer.State().Name
	}
	if st.Dirty {
		drawText("unsaved", 240, int32(y)+7, 12, colorTextMuted)
	}

	x := float32(310)
	for _, vm := range viewModes {
		r := rl.Rectangle{X: x, Y: y, Width: 60, Height: h}
		if vm.mode == st.ViewMode {
			rl.DrawRectangleRounded(r, 0.2, 4, colorAccentLight)
		}
		if gui.Button(r, vm.label) {
			a.designer.SetViewMode(vm.mode)
		}
		x += 64
	}

	x += 16
	gizmoLabel := "Move [G]"
	if a.scene.Mode() == scene3d.GizmoRotate {
		gizmoLabel = "Rotate [G]"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: h}, gizmoLabel) {
		a.scene.ToggleMode()
	}

	right := bounds.Width - 12
	if gui.Button(rl.Rectangle{X: right - 90, Y: y, Width: 90, Height: h}, "Sign out") {
		a.signOut()
	}
	if gui.Button(rl.Rectangle{X: right - 190, Y: y, Width: 90, Height: h}, "Save") {
		a.save()
	}
	if u, ok := a.users.Current(); ok {
		w := rl.MeasureText(u.Name, 14)
		drawText(u.Name, int32(right)-200-w, int32(y)+7, 14, colorTextSecondary)
	}
}

func (a *App) signOut() {
	if err := a.flush(); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	if err := a.users.Logout(a.ctx); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.fields.values[fieldPassword] = ""
	a.designScroll = 0
	a.confirmDelete = ""
	a.setStatus("Signed out", false)
}
