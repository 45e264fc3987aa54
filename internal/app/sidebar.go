package app

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/catalog"
	"roomdesigner/internal/model"
)

const designRowH = 28

func (a *App) drawSidebar(bounds rl.Rectangle) {
	rl.DrawRectangleRec(bounds, colorBgPanel)
	rl.DrawLine(int32(bounds.Width), int32(bounds.Y), int32(bounds.Width), int32(bounds.Y+bounds.Height), colorBorder)

	x := int32(bounds.X) + 12
	y := int32(bounds.Y) + 12
	y = a.drawRoomPanel(x, y, int32(bounds.Width)-24)
	y = a.drawCatalogue(x, y+12, int32(bounds.Width)-24)
	a.drawDesignList(x, y+12, int32(bounds.Width)-24, int32(bounds.Y+bounds.Height)-12)
}

func (a *App) drawRoomPanel(x, y, w int32) int32 {
	y = drawHeader("Room", x, y)

	rows := []struct {
		id, label string
	}{
		{fieldWidth, "Width (ft)"},
		{fieldLength, "Length (ft)"},
		{fieldHeight, "Height (ft)"},
		{fieldWall, "Wall color"},
		{fieldFloor, "Floor color"},
	}
	labelW := int32(90)
	for _, row := range rows {
		drawText(row.label, x, y+6, 13, colorTextSecondary)
		a.fields.draw(row.id, rl.Rectangle{X: float32(x + labelW), Y: float32(y), Width: float32(w - labelW), Height: 24}, false)
		y += 28
	}

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: 26}, "Apply room") {
		err := a.designer.ApplyRoomInput(a.ctx,
			a.fields.get(fieldWidth), a.fields.get(fieldLength), a.fields.get(fieldHeight),
			a.fields.get(fieldWall), a.fields.get(fieldFloor))
		if err != nil {
			a.setStatus(err.Error(), true)
		} else {
			a.setStatus("Room updated", false)
		}
		a.fields.loadRoom(a.designer.State())
	}
	return y + 30
}

func (a *App) drawCatalogue(x, y, w int32) int32 {
	y = drawHeader("Furniture", x, y)
	half := float32(w-4) / 2

	for _, cat := range catalog.Categories() {
		drawText(cat.Name, x, y, 13, colorTextMuted)
		y += 18
		for i, tmpl := range cat.Items {
			col := float32(i % 2)
			r := rl.Rectangle{X: float32(x) + col*(half+4), Y: float32(y), Width: half, Height: 24}
			if gui.Button(r, tmpl.Name) {
				a.addTemplate(tmpl)
			}
			if i%2 == 1 || i == len(cat.Items)-1 {
				y += 28
			}
		}
	}
	return y
}

func (a *App) addTemplate(tmpl model.TemplateItem) {
	item, err := a.designer.AddTemplate(a.ctx, tmpl)
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.setStatus(fmt.Sprintf("Added %s", item.Name), false)
}

func (a *App) drawDesignList(x, y, w, bottom int32) {
	u, ok := a.users.Current()
	if !ok {
		return
	}
	y = drawHeader("My designs", x, y)

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: 24}, "+ New design") {
		a.newDesign(u.ID)
	}
	y += designRowH

	viewH := bottom - y
	if viewH < designRowH {
		return
	}
	area := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(viewH)}
	designs := a.store.GetUserDesigns(u.ID)

	var wheel float32
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), area) {
		wheel = rl.GetMouseWheelMove()
	}
	a.designScroll = scrollDesignList(a.designScroll, wheel, len(designs), viewH)

	current := a.designer.State().DesignID
	mouse := rl.GetMousePosition()
	inArea := rl.CheckCollisionPointRec(mouse, area)

	rl.BeginScissorMode(x, y, w, viewH)
	for i, d := range designs {
		rowY := y + int32(i)*designRowH - a.designScroll
		if rowY+designRowH < y || rowY > bottom {
			continue
		}
		// rows half hidden by the scissor stay visible but are not clickable
		clickable := inArea && rowY >= y && rowY+24 <= bottom
		if !clickable {
			gui.Disable()
		}

		if a.confirmDelete == d.ID {
			drawText("Delete?", x, rowY+6, 13, colorError)
			if gui.Button(rl.Rectangle{X: float32(x + w - 104), Y: float32(rowY), Width: 50, Height: 24}, "Yes") {
				a.deleteDesign(d.ID, u.ID)
			}
			if gui.Button(rl.Rectangle{X: float32(x + w - 50), Y: float32(rowY), Width: 50, Height: 24}, "No") {
				a.confirmDelete = ""
			}
		} else {
			r := rl.Rectangle{X: float32(x), Y: float32(rowY), Width: float32(w - 30), Height: 24}
			if d.ID == current {
				rl.DrawRectangleRounded(r, 0.2, 4, colorAccentLight)
			}
			if gui.Button(r, d.Name) && d.ID != current {
				a.switchDesign(d.ID, u.ID)
			}
			if gui.Button(rl.Rectangle{X: float32(x + w - 26), Y: float32(rowY), Width: 26, Height: 24}, "x") {
				a.confirmDelete = d.ID
			}
		}

		if !clickable {
			gui.Enable()
		}
	}
	rl.EndScissorMode()
}

// scrollDesignList applies a wheel step to the list offset and keeps the
// last row reachable.
func scrollDesignList(offset int32, wheel float32, rows int, viewH int32) int32 {
	offset -= int32(wheel * 20)
	maxScroll := int32(rows)*designRowH - viewH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if offset > maxScroll {
		offset = maxScroll
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// designAfterDelete picks the design to show once deleted is gone: the
// next remaining one in list order, else the previous, else none.
func designAfterDelete(designs []model.Design, deleted string) string {
	for i, d := range designs {
		if d.ID != deleted {
			continue
		}
		if i+1 < len(designs) {
			return designs[i+1].ID
		}
		if i > 0 {
			return designs[i-1].ID
		}
		return ""
	}
	return ""
}

func (a *App) deleteDesign(id, userID string) {
	a.confirmDelete = ""
	open := a.designer.State().DesignID == id
	next := designAfterDelete(a.store.GetUserDesigns(userID), id)

	if err := a.store.DeleteDesign(a.ctx, id); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.log.WithField("design", id).Info("Deleted design")
	if !open {
		a.setStatus("Design deleted", false)
		return
	}
	// the open session belonged to the deleted design; its pending moves go with it
	if next == "" {
		a.newDesign(userID)
	} else if err := a.open(next, userID); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.setStatus("Design deleted", false)
}

func (a *App) switchDesign(id, userID string) {
	if err := a.flush(); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	if err := a.open(id, userID); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.setStatus("Opened "+a.designer.State().Name, false)
}

func (a *App) newDesign(userID string) {
	if err := a.flush(); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	d, err := a.store.CreateDesign(a.ctx, userID, "New Design", model.DefaultRoom())
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	if err := a.open(d.ID, userID); err != nil {
		a.setStatus(err.Error(), true)
	}
}
