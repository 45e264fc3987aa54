package view3d

import (
	"math"
	"testing"

	"roomdesigner/internal/model"
	"roomdesigner/internal/scene3d"
)

func near(a, b model.Vec3) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestOrbitStartsAtPosition(t *testing.T) {
	target := model.V(10, 0, 7.5)
	start := model.V(20, 9, 15)
	c := NewOrbit(target, start)
	if got := c.Position(); !near(got, start) {
		t.Errorf("Expected %+v, got %+v", start, got)
	}
}

func TestOrbitClamps(t *testing.T) {
	c := NewOrbit(model.V(0, 0, 0), model.V(10, 10, 0))
	c.Rotate(0, 1000)
	if c.Pitch != 89 {
		t.Errorf("Expected pitch clamped to 89, got %v", c.Pitch)
	}
	c.Zoom(1000)
	if c.Distance != c.MinDistance {
		t.Errorf("Expected distance %v, got %v", c.MinDistance, c.Distance)
	}
	c.Zoom(-1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("Expected distance %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestOrbitKeepsDistance(t *testing.T) {
	target := model.V(5, 0, 5)
	c := NewOrbit(target, model.V(15, 5, 12))
	d := c.Distance
	c.Rotate(123, -17)
	if got := c.Position().Sub(target).Length(); math.Abs(got-d) > 1e-9 {
		t.Errorf("Expected distance %v after orbit, got %v", d, got)
	}
}

func TestFacesCamera(t *testing.T) {
	room := model.RoomSettings{Width: 15, Length: 20, Height: 9, WallColor: "#FFFFFF", FloorColor: "#EEEEEE"}
	sc := scene3d.Build(room, nil, "")
	visible := map[string]bool{}
	for _, w := range sc.Walls {
		visible[w.Name] = facesCamera(w, sc.Target, sc.Camera)
	}
	// camera sits beyond the front/right corner
	if !visible["back"] || !visible["left"] {
		t.Errorf("Expected far walls visible, got %v", visible)
	}
	if visible["front"] || visible["right"] {
		t.Errorf("Expected near walls culled, got %v", visible)
	}
}
