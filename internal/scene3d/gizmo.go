package scene3d

import (
	"math"

	"roomdesigner/internal/model"
)

type GizmoMode int

const (
	GizmoMove   GizmoMode = 0
	GizmoRotate GizmoMode = 1
)

func (m GizmoMode) String() string {
	if m == GizmoRotate {
		return "rotate"
	}
	return "move"
}

const (
	GizmoLength  = 2.0
	GizmoRadius  = GizmoLength * 0.8
	gizmoHitDist = 0.3
	ringHitDist  = 0.4
)

// Axis indices into GizmoAxes.
const (
	AxisNone = -1
	AxisX    = 0
	AxisY    = 1
	AxisZ    = 2
)

var GizmoAxes = [3]model.Vec3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

// AxisEnabled reports which handles a mode exposes. Furniture stays on the
// floor and only turns around the vertical axis.
func (m GizmoMode) AxisEnabled(axis int) bool {
	if m == GizmoRotate {
		return axis == AxisY
	}
	return axis == AxisX || axis == AxisZ
}

// PickAxis returns the gizmo handle closest to the ray, or AxisNone.
func PickAxis(mode GizmoMode, r Ray, center model.Vec3) int {
	best := AxisNone
	bestDist := math.Inf(1)

	for i, axis := range GizmoAxes {
		if !mode.AxisEnabled(i) {
			continue
		}
		if mode == GizmoRotate {
			pt, ok := rayPlaneIntersect(r, center, axis)
			if !ok {
				continue
			}
			fromRing := math.Abs(pt.Sub(center).Length() - GizmoRadius)
			if fromRing < ringHitDist && fromRing < bestDist {
				best, bestDist = i, fromRing
			}
			continue
		}
		_, t2, dist := closestPointBetweenRays(r.Origin, r.Dir, center, axis)
		if t2 > 0 && t2 < GizmoLength && dist < gizmoHitDist && dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// drag is an active gizmo manipulation.
type drag struct {
	mode       GizmoMode
	itemID     string
	axis       model.Vec3
	initPos    model.Vec3
	initRot    model.Vec3
	scale      model.Vec3
	planeN     model.Vec3
	startT     float64
	startAngle float64
}

func beginDrag(mode GizmoMode, axisIdx int, r Ray, camPos model.Vec3, o Object) (*drag, bool) {
	d := &drag{
		mode:    mode,
		itemID:  o.ID,
		axis:    GizmoAxes[axisIdx],
		initPos: o.Position,
		initRot: o.Rotation,
		scale:   o.Scale,
	}

	if mode == GizmoRotate {
		d.planeN = d.axis
		pt, ok := rayPlaneIntersect(r, d.initPos, d.planeN)
		if !ok {
			return nil, false
		}
		d.startAngle = angleAround(pt.Sub(d.initPos))
		return d, true
	}

	// drag plane contains the axis and faces the camera as much as it can
	viewDir := d.initPos.Sub(camPos).Normalize()
	cross1 := viewDir.Cross(d.axis)
	d.planeN = d.axis.Cross(cross1).Normalize()

	pt, ok := rayPlaneIntersect(r, d.initPos, d.planeN)
	if !ok {
		return nil, false
	}
	d.startT = pt.Sub(d.initPos).Dot(d.axis)
	return d, true
}

// moveTo returns the clamped position for the current ray.
func (d *drag) moveTo(r Ray, room model.RoomSettings) (model.Vec3, bool) {
	pt, ok := rayPlaneIntersect(r, d.initPos, d.planeN)
	if !ok {
		return model.Vec3{}, false
	}
	delta := pt.Sub(d.initPos).Dot(d.axis) - d.startT
	return model.ClampToRoom(d.initPos.Add(d.axis.Scale(delta)), d.scale, room), true
}

// rotateTo returns the rotation for the current ray; the item follows the
// pointer around the ring.
func (d *drag) rotateTo(r Ray) (model.Vec3, bool) {
	pt, ok := rayPlaneIntersect(r, d.initPos, d.planeN)
	if !ok {
		return model.Vec3{}, false
	}
	rot := d.initRot
	rot.Y += angleAround(pt.Sub(d.initPos)) - d.startAngle
	return rot, true
}

// angleAround measures v in the floor plane with the same handedness as
// Vec3.RotateY.
func angleAround(v model.Vec3) float64 {
	return math.Atan2(-v.Z, v.X)
}

// --- math helpers ---

// closestPointBetweenRays finds the closest approach between two rays.
// Returns (t1, t2, distance) where t1/t2 are parameters along each ray.
func closestPointBetweenRays(a, u, b, v model.Vec3) (t1, t2, dist float64) {
	w := a.Sub(b)
	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	uw := u.Dot(w)
	vw := v.Dot(w)

	denom := uu*vv - uv*uv
	if denom < 1e-9 {
		return 0, 0, math.Inf(1)
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := a.Add(u.Scale(t1))
	p2 := b.Add(v.Scale(t2))
	return t1, t2, p1.Sub(p2).Length()
}

// rayPlaneIntersect returns where a ray hits a plane (defined by point + normal).
func rayPlaneIntersect(r Ray, planePoint, planeNormal model.Vec3) (model.Vec3, bool) {
	denom := r.Dir.Dot(planeNormal)
	if math.Abs(denom) < 1e-9 {
		return model.Vec3{}, false
	}
	t := planePoint.Sub(r.Origin).Dot(planeNormal) / denom
	if t < 0 {
		return model.Vec3{}, false
	}
	return r.At(t), true
}
