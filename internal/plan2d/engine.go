package plan2d

import (
	"image"

	"roomdesigner/internal/event"
	"roomdesigner/internal/model"
)

// HitTest returns the id of the topmost item under the pixel (x, y).
// Items later in the list are drawn on top and win.
func HitTest(items []model.FurnitureItem, x, y float64) (string, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if Footprint(items[i]).Contains(x, y) {
			return items[i].ID, true
		}
	}
	return "", false
}

type dragSession struct {
	itemID       string
	lastX, lastY float64
}

// Engine is the interactive plan. It holds a snapshot of the scene pushed
// in with Sync and reports user intent through OnSelect and OnMove; it
// never writes to the design itself.
type Engine struct {
	room     model.RoomSettings
	items    []model.FurnitureItem
	selected string
	drag     *dragSession

	OnSelect event.Signal[string]
	OnMove   event.Signal[model.Move]
}

func NewEngine() *Engine {
	return &Engine{}
}

// Sync replaces the scene snapshot.
func (e *Engine) Sync(room model.RoomSettings, items []model.FurnitureItem, selectedID string) {
	e.room = room
	e.items = model.CloneItems(items)
	e.selected = selectedID
}

func (e *Engine) Render() *image.RGBA {
	return Render(e.room, e.items, e.selected)
}

func (e *Engine) Size() (int, int) {
	return SurfaceSize(e.room)
}

// Dragging reports the item currently being dragged.
func (e *Engine) Dragging() (string, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.drag.itemID, true
}

// PointerDown selects the topmost item under the pointer and starts a drag.
// A miss does nothing; deselection happens elsewhere.
func (e *Engine) PointerDown(x, y float64) {
	id, ok := HitTest(e.items, x, y)
	if !ok {
		return
	}
	e.selected = id
	e.drag = &dragSession{itemID: id, lastX: x, lastY: y}
	e.OnSelect.Invoke(id)
}

// PointerMove moves the dragged item by the pointer delta since the last
// event, keeping its footprint inside the room.
func (e *Engine) PointerMove(x, y float64) {
	if e.drag == nil {
		return
	}
	i := model.FindItem(e.items, e.drag.itemID)
	if i < 0 {
		e.drag = nil
		return
	}

	it := &e.items[i]
	dx := (x - e.drag.lastX) / Scale
	dz := (y - e.drag.lastY) / Scale
	next := model.ClampToRoom(model.Vec3{
		X: it.Position.X + dx,
		Y: it.Position.Y,
		Z: it.Position.Z + dz,
	}, it.Scale, e.room)

	it.Position = next
	e.drag.lastX, e.drag.lastY = x, y
	e.OnMove.Invoke(model.Move{ItemID: it.ID, Position: next})
}

// PointerUp ends the drag session.
func (e *Engine) PointerUp() {
	e.drag = nil
}

// PointerLeave ends the drag session, same as PointerUp.
func (e *Engine) PointerLeave() {
	e.drag = nil
}
