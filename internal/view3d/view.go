// Package view3d draws a scene3d.Scene with raylib and turns mouse input
// into scene engine pointer events.
package view3d

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/model"
	"roomdesigner/internal/scene3d"
)

var (
	colorBackground = rl.NewColor(243, 244, 246, 255)
	colorSelection  = rl.Yellow
	gizmoColors     = [3]rl.Color{rl.Red, rl.Green, rl.Blue}
)

const gizmoThickness = 0.05

// View renders into an offscreen target so it can share the window with
// the 2D plan.
type View struct {
	Camera *OrbitCamera

	target rl.RenderTexture2D
	width  int32
	height int32
	// lastTarget is the scene target the camera was built for.
	lastTarget model.Vec3
	dragging   bool
}

// New allocates the render target. Call after the window exists.
func New(width, height int32) *View {
	return &View{
		target: rl.LoadRenderTexture(width, height),
		width:  width,
		height: height,
	}
}

func (v *View) Unload() {
	rl.UnloadRenderTexture(v.target)
}

// Resize reallocates the render target when the panel size changes.
func (v *View) Resize(width, height int32) {
	if width == v.width && height == v.height || width <= 0 || height <= 0 {
		return
	}
	rl.UnloadRenderTexture(v.target)
	v.target = rl.LoadRenderTexture(width, height)
	v.width, v.height = width, height
}

// syncCamera resets the orbit when the room, and so the target, changed.
func (v *View) syncCamera(sc scene3d.Scene) {
	if v.Camera == nil || sc.Target != v.lastTarget {
		v.Camera = NewOrbit(sc.Target, sc.Camera)
		v.lastTarget = sc.Target
	}
}

// MouseRay converts a window-space mouse position inside bounds to a
// world ray.
func (v *View) MouseRay(mouse rl.Vector2, bounds rl.Rectangle) scene3d.Ray {
	local := rl.Vector2{X: mouse.X - bounds.X, Y: mouse.Y - bounds.Y}
	ray := rl.GetScreenToWorldRayEx(local, v.Camera.GetRaylibCamera(), v.width, v.height)
	return scene3d.Ray{Origin: fromRL(ray.Position), Dir: fromRL(ray.Direction).Normalize()}
}

// HandleInput feeds mouse input inside bounds to the engine. The left
// button picks and drags gizmo handles; the right button orbits.
func (v *View) HandleInput(e *scene3d.Engine, bounds rl.Rectangle) {
	v.syncCamera(e.Scene())

	mouse := rl.GetMousePosition()
	inside := rl.CheckCollisionPointRec(mouse, bounds)
	ray := v.MouseRay(mouse, bounds)

	if v.dragging {
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			v.dragging = false
			e.PointerUp()
			return
		}
		e.PointerMove(ray)
		return
	}

	if !inside {
		return
	}
	v.Camera.Update()
	e.Hover(ray)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		e.PointerDown(ray, v.Camera.Position())
		v.dragging = e.Dragging()
	}
}

// Render draws the scene into the offscreen target.
func (v *View) Render(e *scene3d.Engine) {
	sc := e.Scene()
	v.syncCamera(sc)
	cam := v.Camera.GetRaylibCamera()

	rl.BeginTextureMode(v.target)
	rl.ClearBackground(colorBackground)
	rl.BeginMode3D(cam)

	drawPanel(sc.Floor)
	camPos := v.Camera.Position()
	for _, w := range sc.Walls {
		if facesCamera(w, sc.Target, camPos) {
			drawPanel(w)
		}
	}
	for _, o := range sc.Objects {
		drawObject(o)
	}
	drawGizmo(e)

	rl.EndMode3D()
	rl.EndTextureMode()
}

// Draw blits the last rendered frame into bounds.
func (v *View) Draw(bounds rl.Rectangle) {
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(v.width), Height: -float32(v.height)}
	rl.DrawTexturePro(v.target.Texture, src, bounds, rl.Vector2{}, 0, rl.White)
}

func colorOf(hex string) rl.Color {
	return rl.Color(model.HexOrBlack(hex))
}

// facesCamera culls walls seen from behind so the room stays open toward
// the viewer.
func facesCamera(p scene3d.Panel, target, cam model.Vec3) bool {
	inward := target.Sub(p.Center)
	inward.Y = 0
	toCam := cam.Sub(p.Center)
	toCam.Y = 0
	return inward.Dot(toCam) > 0
}

func drawPanel(p scene3d.Panel) {
	rl.DrawCubeV(vec(p.Center), vec(p.Size), colorOf(p.Color))
}

func drawObject(o scene3d.Object) {
	rl.PushMatrix()
	rl.Translatef(float32(o.Position.X), float32(o.Position.Y), float32(o.Position.Z))
	rl.Rotatef(float32(o.Rotation.X*180/math.Pi), 1, 0, 0)
	rl.Rotatef(float32(o.Rotation.Y*180/math.Pi), 0, 1, 0)
	rl.Rotatef(float32(o.Rotation.Z*180/math.Pi), 0, 0, 1)
	rl.Scalef(float32(o.Scale.X), float32(o.Scale.Y), float32(o.Scale.Z))
	for _, p := range o.Parts {
		rl.DrawCubeV(vec(p.Offset), vec(p.Size), colorOf(o.PartColor(p)))
	}
	rl.PopMatrix()

	if o.Selected {
		lb := o.LocalBounds()
		center := o.Position.Add(lb.Center().Mul(o.Scale).RotateY(o.Rotation.Y))
		drawRotatedBoxWires(vec(center), vec(lb.Size().Mul(o.Scale)), vec(o.Rotation), colorSelection)
	}
}

// drawGizmo draws the handles of the selected item on top of the scene.
func drawGizmo(e *scene3d.Engine) {
	c, ok := e.GizmoCenter()
	if !ok {
		return
	}
	center := vec(c)

	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	mode := e.Mode()
	for i, axis := range scene3d.GizmoAxes {
		if !mode.AxisEnabled(i) {
			continue
		}
		color := gizmoColors[i]
		if e.HoveredAxis() == i {
			color = rl.Yellow
		}

		switch mode {
		case scene3d.GizmoMove:
			end := rl.Vector3Add(center, rl.Vector3Scale(vec(axis), scene3d.GizmoLength))
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			tip := rl.Vector3{X: 0.15, Y: 0.15, Z: 0.15}
			rl.DrawCubeV(end, tip, color)
		case scene3d.GizmoRotate:
			segments := 32
			radius := float32(scene3d.GizmoRadius)
			for s := range segments {
				t0 := float64(s) / float64(segments) * math.Pi * 2
				t1 := float64(s+1) / float64(segments) * math.Pi * 2
				p0 := rl.Vector3{X: center.X + radius*float32(math.Cos(t0)), Y: center.Y, Z: center.Z + radius*float32(math.Sin(t0))}
				p1 := rl.Vector3{X: center.X + radius*float32(math.Cos(t1)), Y: center.Y, Z: center.Z + radius*float32(math.Sin(t1))}
				rl.DrawCylinderEx(p0, p1, gizmoThickness*0.7, gizmoThickness*0.7, 6, color)
			}
		}
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

// drawRotatedBoxWires draws a wireframe box. rotation is in radians.
func drawRotatedBoxWires(center, size, rotation rl.Vector3, color rl.Color) {
	rotX := rl.MatrixRotateX(rotation.X)
	rotY := rl.MatrixRotateY(rotation.Y)
	rotZ := rl.MatrixRotateZ(rotation.Z)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotZ, rotY), rotX)

	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	corners := [8]rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}
	for i := range corners {
		corners[i] = rl.Vector3Add(rl.Vector3Transform(corners[i], rotMatrix), center)
	}

	for i := 0; i < 4; i++ {
		rl.DrawLine3D(corners[i], corners[(i+1)%4], color)
		rl.DrawLine3D(corners[4+i], corners[4+(i+1)%4], color)
		rl.DrawLine3D(corners[i], corners[i+4], color)
	}
}
