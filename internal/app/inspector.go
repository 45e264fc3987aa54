package app

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/designer"
	"roomdesigner/internal/model"
	"roomdesigner/internal/store"
)

var scaleAxes = []struct {
	axis  designer.Axis
	label string
}{
	{designer.AxisX, "X"},
	{designer.AxisY, "Y"},
	{designer.AxisZ, "Z"},
}

func (a *App) drawInspector(bounds rl.Rectangle) {
	rl.DrawRectangleRec(bounds, colorBgPanel)
	rl.DrawLine(int32(bounds.X), int32(bounds.Y), int32(bounds.X), int32(bounds.Y+bounds.Height), colorBorder)

	x := int32(bounds.X) + 12
	y := int32(bounds.Y) + 12
	w := int32(bounds.Width) - 24

	item, ok := a.designer.Selected()
	if !ok {
		drawHeader("Item", x, y)
		drawText("Select an item to edit it.", x, y+24, 13, colorTextMuted)
		return
	}

	y = drawHeader(item.Name, x, y)
	drawText(string(item.Type), x, y, 13, colorTextMuted)
	y += 20
	drawText(fmt.Sprintf("x %.2f  z %.2f", item.Position.X, item.Position.Z), x, y, 13, colorTextSecondary)
	y += 24

	// Color
	drawText("Color", x, y+6, 13, colorTextSecondary)
	if a.fields.active != fieldColor {
		a.fields.values[fieldColor] = item.Color
	}
	swatch := rl.Rectangle{X: float32(x + 50), Y: float32(y), Width: 24, Height: 24}
	rl.DrawRectangleRec(swatch, rl.Color(model.HexOrBlack(item.Color)))
	rl.DrawRectangleLinesEx(swatch, 1, colorBorder)
	if a.fields.draw(fieldColor, rl.Rectangle{X: float32(x + 80), Y: float32(y), Width: float32(w - 80), Height: 24}, false) {
		a.applyColor(a.fields.get(fieldColor))
	}
	y += 36

	// Scale
	drawText("Scale", x, y, 13, colorTextSecondary)
	y += 20
	for _, sa := range scaleAxes {
		drawText(fmt.Sprintf("%s %.1f", sa.label, axisValue(item.Scale, sa.axis)), x, y+6, 13, colorTextPrimary)
		if gui.Button(rl.Rectangle{X: float32(x + w - 64), Y: float32(y), Width: 30, Height: 24}, "-") {
			a.report(a.designer.ScaleSelected(a.ctx, sa.axis, -designer.ScaleStep), "")
		}
		if gui.Button(rl.Rectangle{X: float32(x + w - 30), Y: float32(y), Width: 30, Height: 24}, "+") {
			a.report(a.designer.ScaleSelected(a.ctx, sa.axis, designer.ScaleStep), "")
		}
		y += 28
	}
	y += 8

	// Rotation
	drawText(fmt.Sprintf("Rotation %.0f deg", item.Rotation.Y*180/math.Pi), x, y, 13, colorTextSecondary)
	y += 20
	half := float32(w-4) / 2
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: half, Height: 24}, "-90") {
		a.report(a.designer.RotateSelected(a.ctx, -designer.RotateStep), "")
	}
	if gui.Button(rl.Rectangle{X: float32(x) + half + 4, Y: float32(y), Width: half, Height: 24}, "+90") {
		a.report(a.designer.RotateSelected(a.ctx, designer.RotateStep), "")
	}
	y += 40

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: 26}, "Remove item") {
		a.report(a.designer.RemoveSelected(a.ctx), "Item removed")
	}
}

func (a *App) applyColor(hex string) {
	if _, err := model.ParseHex(hex); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.report(a.designer.UpdateSelected(a.ctx, store.ItemPatch{Color: &hex}), "")
}

func axisValue(v model.Vec3, axis designer.Axis) float64 {
	switch axis {
	case designer.AxisX:
		return v.X
	case designer.AxisY:
		return v.Y
	default:
		return v.Z
	}
}
