package scene3d

import (
	"roomdesigner/internal/event"
	"roomdesigner/internal/model"
)

// Engine is the interactive 3D scene. Like the 2D plan it only reports
// intent: selection changes, moves and rotations.
type Engine struct {
	scene    Scene
	selected string
	mode     GizmoMode
	drag     *drag
	hovered  int

	OnSelect event.Signal[string]
	OnMove   event.Signal[model.Move]
	OnRotate event.Signal[model.Rotate]
}

func NewEngine() *Engine {
	return &Engine{hovered: AxisNone}
}

// Sync rebuilds the scene descriptors from the design state.
func (e *Engine) Sync(room model.RoomSettings, items []model.FurnitureItem, selectedID string) {
	e.scene = Build(room, items, selectedID)
	e.selected = selectedID
	if e.drag != nil {
		if _, ok := e.scene.Find(e.drag.itemID); !ok {
			e.drag = nil
		}
	}
}

func (e *Engine) Scene() Scene { return e.scene }

func (e *Engine) Mode() GizmoMode { return e.mode }

// SetMode switches between move and rotate handles. An active drag ends.
func (e *Engine) SetMode(m GizmoMode) {
	e.mode = m
	e.drag = nil
}

// ToggleMode flips the gizmo between move and rotate.
func (e *Engine) ToggleMode() {
	if e.mode == GizmoMove {
		e.SetMode(GizmoRotate)
	} else {
		e.SetMode(GizmoMove)
	}
}

// HoveredAxis is the handle under the pointer, or the dragged one.
func (e *Engine) HoveredAxis() int { return e.hovered }

func (e *Engine) Dragging() bool { return e.drag != nil }

// GizmoCenter is where the handles of the selected item are drawn.
func (e *Engine) GizmoCenter() (model.Vec3, bool) {
	o, ok := e.scene.Find(e.selected)
	if !ok {
		return model.Vec3{}, false
	}
	return o.Position, true
}

// Hover updates the highlighted handle.
func (e *Engine) Hover(r Ray) {
	if e.drag != nil {
		return
	}
	e.hovered = AxisNone
	if c, ok := e.GizmoCenter(); ok {
		e.hovered = PickAxis(e.mode, r, c)
	}
}

// PointerDown grabs a gizmo handle of the selected item, otherwise selects
// the nearest item under the ray. Clicking the background deselects.
func (e *Engine) PointerDown(r Ray, camPos model.Vec3) {
	if o, ok := e.scene.Find(e.selected); ok {
		if axis := PickAxis(e.mode, r, o.Position); axis != AxisNone {
			if d, ok := beginDrag(e.mode, axis, r, camPos, o); ok {
				e.drag = d
				e.hovered = axis
				return
			}
		}
	}

	id, ok := e.scene.Pick(r)
	if !ok {
		id = ""
	}
	e.selected = id
	e.OnSelect.Invoke(id)
}

// PointerMove updates an active gizmo drag.
func (e *Engine) PointerMove(r Ray) {
	if e.drag == nil {
		return
	}
	switch e.drag.mode {
	case GizmoMove:
		if pos, ok := e.drag.moveTo(r, e.scene.Room); ok {
			e.OnMove.Invoke(model.Move{ItemID: e.drag.itemID, Position: pos})
		}
	case GizmoRotate:
		if rot, ok := e.drag.rotateTo(r); ok {
			e.OnRotate.Invoke(model.Rotate{ItemID: e.drag.itemID, Rotation: rot})
		}
	}
}

func (e *Engine) PointerUp() {
	e.drag = nil
	e.hovered = AxisNone
}
