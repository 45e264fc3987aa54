package view3d

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/model"
)

// OrbitCamera circles a target point. Angles are in degrees.
type OrbitCamera struct {
	Target    model.Vec3
	Yaw       float64
	Pitch     float64
	Distance  float64
	LookSpeed float64
	ZoomSpeed float64

	MinDistance float64
	MaxDistance float64
}

// NewOrbit returns a camera that starts at position looking at target.
func NewOrbit(target, position model.Vec3) *OrbitCamera {
	off := position.Sub(target)
	dist := off.Length()
	c := &OrbitCamera{
		Target:      target,
		Distance:    dist,
		LookSpeed:   0.3,
		ZoomSpeed:   1.5,
		MinDistance: 2,
		MaxDistance: 200,
	}
	if dist > 0 {
		c.Yaw = math.Atan2(off.Z, off.X) * 180 / math.Pi
		c.Pitch = math.Asin(off.Y/dist) * 180 / math.Pi
	}
	return c
}

func (c *OrbitCamera) Position() model.Vec3 {
	yawRad := c.Yaw * math.Pi / 180
	pitchRad := c.Pitch * math.Pi / 180
	dir := model.V(
		math.Cos(pitchRad)*math.Cos(yawRad),
		math.Sin(pitchRad),
		math.Cos(pitchRad)*math.Sin(yawRad),
	)
	return c.Target.Add(dir.Scale(c.Distance))
}

// Rotate applies a mouse delta in pixels.
func (c *OrbitCamera) Rotate(dx, dy float64) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch += dy * c.LookSpeed

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -10 {
		c.Pitch = -10
	}
}

// Zoom moves the camera toward the target for positive wheel steps.
func (c *OrbitCamera) Zoom(steps float64) {
	c.Distance = model.Clamp(c.Distance-steps*c.ZoomSpeed, c.MinDistance, c.MaxDistance)
}

// Update reads orbit and zoom input. Right mouse drags orbit.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		c.Rotate(float64(d.X), float64(d.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(float64(wheel))
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(c.Position()),
		Target:     vec(c.Target),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func vec(v model.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRL(v rl.Vector3) model.Vec3 {
	return model.V(float64(v.X), float64(v.Y), float64(v.Z))
}
