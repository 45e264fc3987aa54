package app

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/model"
)

func TestComputeLayoutModes(t *testing.T) {
	split := computeLayout(1600, 900, model.ViewSplit)
	if split.Plan.Width == 0 || split.Scene.Width == 0 {
		t.Fatal("Expected both views in split mode")
	}
	if split.Plan.X+split.Plan.Width > split.Scene.X {
		t.Error("Expected plan left of the scene")
	}

	only2D := computeLayout(1600, 900, model.View2D)
	if only2D.Scene.Width != 0 || only2D.Plan.Width <= split.Plan.Width {
		t.Errorf("Expected the plan to fill the content area, got %+v", only2D)
	}

	only3D := computeLayout(1600, 900, model.View3D)
	if only3D.Plan.Width != 0 || only3D.Scene.Width == 0 {
		t.Errorf("Expected only the scene, got %+v", only3D)
	}
}

func TestFitRect(t *testing.T) {
	bounds := rl.Rectangle{X: 100, Y: 50, Width: 200, Height: 400}
	dst, s := fitRect(400, 300, bounds)
	if s != 0.5 {
		t.Errorf("Expected scale 0.5, got %v", s)
	}
	if dst.Width != 200 || dst.Height != 150 || dst.Y != 175 {
		t.Errorf("Unexpected destination %+v", dst)
	}

	_, s = fitRect(50, 50, bounds)
	if s != 1 {
		t.Errorf("Expected no upscaling, got %v", s)
	}
}

func TestToSurface(t *testing.T) {
	dst := rl.Rectangle{X: 100, Y: 175, Width: 200, Height: 150}
	x, y := toSurface(rl.Vector2{X: 200, Y: 250}, dst, 0.5)
	if x != 200 || y != 150 {
		t.Errorf("Expected (200, 150), got (%v, %v)", x, y)
	}
}
