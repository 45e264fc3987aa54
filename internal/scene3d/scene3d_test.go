package scene3d

import (
	"math"
	"testing"

	"roomdesigner/internal/model"
)

var room = model.RoomSettings{Width: 15, Length: 20, Height: 9, WallColor: "#FFFFFF", FloorColor: "#EEEEEE"}

func furniture(id string, t model.FurnitureType, x, z float64) model.FurnitureItem {
	return model.FurnitureItem{ID: id, Type: t, Position: model.V(x, 0, z), Scale: model.V(1, 1, 1), Color: "#808080"}
}

func rayThrough(from, to model.Vec3) Ray {
	return Ray{Origin: from, Dir: to.Sub(from)}
}

func TestBuildRoomAndCamera(t *testing.T) {
	sc := Build(room, nil, "")
	if len(sc.Walls) != 4 {
		t.Errorf("Expected 4 walls, got %d", len(sc.Walls))
	}
	if sc.Camera != model.V(20, 9, 15) {
		t.Errorf("Expected camera at (length, height, width), got %+v", sc.Camera)
	}
	if sc.Target != model.V(10, 0, 7.5) {
		t.Errorf("Expected target at room center, got %+v", sc.Target)
	}
	if sc.Floor.Color != "#EEEEEE" {
		t.Errorf("Expected floor color, got %s", sc.Floor.Color)
	}
}

func TestSilhouetteFallback(t *testing.T) {
	sc := Build(room, []model.FurnitureItem{
		furniture("a", model.TypeSofa, 5, 5),
		furniture("b", "hammock", 8, 8),
	}, "b")

	if sc.Objects[0].Placeholder {
		t.Error("Expected sofa to have a silhouette")
	}
	b := sc.Objects[1]
	if !b.Placeholder || len(b.Parts) != 1 {
		t.Errorf("Expected unit box placeholder, got %+v", b.Parts)
	}
	if b.PartColor(b.Parts[0]) != "#808080" {
		t.Errorf("Expected placeholder in item color, got %s", b.PartColor(b.Parts[0]))
	}
	if !b.Selected || sc.Objects[0].Selected {
		t.Error("Expected only b selected")
	}
}

func TestSofaCushionsAreDarker(t *testing.T) {
	sc := Build(room, []model.FurnitureItem{furniture("s", model.TypeSofa, 5, 5)}, "")
	o := sc.Objects[0]
	darker := 0
	for _, p := range o.Parts {
		if p.Shade < 0 && o.PartColor(p) == "#6C6C6C" {
			darker++
		}
	}
	if darker != 2 {
		t.Errorf("Expected 2 darker cushions, got %d", darker)
	}
}

func TestWorldBoundsFollowRotation(t *testing.T) {
	it := furniture("s", model.TypeSofa, 10, 7)
	sc := Build(room, []model.FurnitureItem{it}, "")
	size := sc.Objects[0].Bounds.Size()
	if math.Abs(size.X-2) > 1e-9 || math.Abs(size.Z-0.8) > 1e-9 {
		t.Errorf("Expected 2 x 0.8 footprint, got %+v", size)
	}

	it.Rotation.Y = math.Pi / 2
	sc = Build(room, []model.FurnitureItem{it}, "")
	size = sc.Objects[0].Bounds.Size()
	if math.Abs(size.X-0.8) > 1e-9 || math.Abs(size.Z-2) > 1e-9 {
		t.Errorf("Expected rotated 0.8 x 2 footprint, got %+v", size)
	}
}

func TestPickNearest(t *testing.T) {
	sc := Build(room, []model.FurnitureItem{
		furniture("far", model.TypeCabinet, 12, 5),
		furniture("near", model.TypeCabinet, 6, 5),
	}, "")

	id, ok := sc.Pick(Ray{Origin: model.V(0, 0.5, 5), Dir: model.V(1, 0, 0)})
	if !ok || id != "near" {
		t.Errorf("Expected near, got %q (ok=%v)", id, ok)
	}

	if _, ok := sc.Pick(Ray{Origin: model.V(0, 0.5, 12), Dir: model.V(1, 0, 0)}); ok {
		t.Error("Expected miss")
	}
	if _, ok := sc.Pick(Ray{Origin: model.V(0, 0.5, 5), Dir: model.V(-1, 0, 0)}); ok {
		t.Error("Expected no hit behind the origin")
	}
}

func TestEngineSelectAndBackgroundDeselect(t *testing.T) {
	e := NewEngine()
	e.Sync(room, []model.FurnitureItem{furniture("c", model.TypeCabinet, 5, 5)}, "")

	var got []string
	e.OnSelect.AddListener(func(id string) { got = append(got, id) })

	cam := model.V(5, 10, 15)
	e.PointerDown(rayThrough(cam, model.V(5, 0.5, 5)), cam)
	e.Sync(room, []model.FurnitureItem{furniture("c", model.TypeCabinet, 5, 5)}, "c")
	e.PointerDown(rayThrough(cam, model.V(15, 0, 1)), cam)

	if len(got) != 2 || got[0] != "c" || got[1] != "" {
		t.Errorf("Expected [c \"\"], got %q", got)
	}
}

func TestGizmoMoveAlongX(t *testing.T) {
	e := NewEngine()
	items := []model.FurnitureItem{furniture("c", model.TypeChair, 5, 5)}
	e.Sync(room, items, "c")

	var moves []model.Move
	e.OnMove.AddListener(func(m model.Move) { moves = append(moves, m) })
	selects := 0
	e.OnSelect.AddListener(func(string) { selects++ })

	cam := model.V(5, 10, 15)
	e.PointerDown(rayThrough(cam, model.V(6, 0, 5)), cam)
	if !e.Dragging() {
		t.Fatal("Expected the X handle to be grabbed")
	}
	if selects != 0 {
		t.Error("Grabbing a handle must not change selection")
	}

	e.PointerMove(rayThrough(cam, model.V(8, 0, 5)))
	if len(moves) != 1 {
		t.Fatalf("Expected 1 move, got %d", len(moves))
	}
	p := moves[0].Position
	if math.Abs(p.X-7) > 1e-9 || p.Z != 5 || p.Y != 0 {
		t.Errorf("Expected (7,0,5), got %+v", p)
	}

	e.PointerMove(rayThrough(cam, model.V(100, 0, 5)))
	if got := moves[len(moves)-1].Position.X; got != 19.5 {
		t.Errorf("Expected x clamped to 19.5, got %v", got)
	}

	e.PointerUp()
	e.PointerMove(rayThrough(cam, model.V(8, 0, 5)))
	if len(moves) != 2 {
		t.Errorf("Expected no moves after release, got %d", len(moves))
	}
}

func TestGizmoRotateAroundY(t *testing.T) {
	e := NewEngine()
	e.Sync(room, []model.FurnitureItem{furniture("c", model.TypeChair, 5, 5)}, "c")
	e.SetMode(GizmoRotate)

	var rots []model.Rotate
	e.OnRotate.AddListener(func(r model.Rotate) { rots = append(rots, r) })

	down := model.V(0, -1, 0)
	e.PointerDown(Ray{Origin: model.V(5+GizmoRadius, 10, 5), Dir: down}, model.V(5, 10, 5))
	if !e.Dragging() {
		t.Fatal("Expected the Y ring to be grabbed")
	}
	e.PointerMove(Ray{Origin: model.V(5, 10, 5-GizmoRadius), Dir: down})

	if len(rots) != 1 {
		t.Fatalf("Expected 1 rotation, got %d", len(rots))
	}
	if math.Abs(rots[0].Rotation.Y-math.Pi/2) > 1e-9 {
		t.Errorf("Expected quarter turn, got %v", rots[0].Rotation.Y)
	}
}

func TestToggleMode(t *testing.T) {
	e := NewEngine()
	if e.Mode() != GizmoMove {
		t.Error("Expected move mode by default")
	}
	e.ToggleMode()
	if e.Mode() != GizmoRotate {
		t.Error("Expected rotate after toggle")
	}
	if !GizmoRotate.AxisEnabled(AxisY) || GizmoRotate.AxisEnabled(AxisX) {
		t.Error("Rotate mode should only expose the Y ring")
	}
}
