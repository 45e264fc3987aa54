// Package scene3d describes the 3D view of a design without drawing it:
// room panels, per-item silhouettes, picking and the transform gizmo.
// Rendering lives in view3d.
package scene3d

import (
	"roomdesigner/internal/model"
)

const wallThickness = 0.1

// Panel is a flat box of the room shell.
type Panel struct {
	Name   string
	Center model.Vec3
	Size   model.Vec3
	Color  string
}

// Object is one furniture item ready to draw.
type Object struct {
	ID       string
	Type     model.FurnitureType
	Position model.Vec3
	Rotation model.Vec3
	Scale    model.Vec3
	Color    string
	Selected bool
	Parts    []Part
	// Placeholder is set when the type had no silhouette.
	Placeholder bool
	Bounds      AABB
}

// PartColor is the hex color of part p on this object.
func (o Object) PartColor(p Part) string {
	if p.Shade == 0 {
		return o.Color
	}
	return model.Shade(o.Color, p.Shade)
}

// LocalBounds is the unscaled, unrotated box around the silhouette.
func (o Object) LocalBounds() AABB { return localBounds(o.Parts) }

type Scene struct {
	Room    model.RoomSettings
	Floor   Panel
	Walls   []Panel
	Objects []Object
	// Target is where the orbit camera looks; Camera is its start position.
	Target model.Vec3
	Camera model.Vec3
}

// Build turns the design state into draw descriptors. It is pure.
func Build(room model.RoomSettings, items []model.FurnitureItem, selectedID string) Scene {
	l, w, h := room.Length, room.Width, room.Height
	sc := Scene{
		Room: room,
		Floor: Panel{
			Name:   "floor",
			Center: model.V(l/2, -wallThickness/2, w/2),
			Size:   model.V(l, wallThickness, w),
			Color:  room.FloorColor,
		},
		Walls: []Panel{
			{Name: "back", Center: model.V(l/2, h/2, 0), Size: model.V(l, h, wallThickness), Color: room.WallColor},
			{Name: "front", Center: model.V(l/2, h/2, w), Size: model.V(l, h, wallThickness), Color: room.WallColor},
			{Name: "left", Center: model.V(0, h/2, w/2), Size: model.V(wallThickness, h, w), Color: room.WallColor},
			{Name: "right", Center: model.V(l, h/2, w/2), Size: model.V(wallThickness, h, w), Color: room.WallColor},
		},
		Target: room.Center(),
		Camera: model.V(l, h, w),
	}

	sc.Objects = make([]Object, 0, len(items))
	for _, it := range items {
		parts, ok := Silhouette(it.Type)
		sc.Objects = append(sc.Objects, Object{
			ID:          it.ID,
			Type:        it.Type,
			Position:    it.Position,
			Rotation:    it.Rotation,
			Scale:       it.Scale,
			Color:       it.Color,
			Selected:    it.ID == selectedID,
			Parts:       parts,
			Placeholder: !ok,
			Bounds:      worldBounds(it, parts),
		})
	}
	return sc
}

// worldBounds is the axis-aligned box around the scaled, y-rotated
// silhouette.
func worldBounds(it model.FurnitureItem, parts []Part) AABB {
	lb := localBounds(parts)
	min, max := lb.Min.Mul(it.Scale), lb.Max.Mul(it.Scale)

	corners := [4]model.Vec3{
		model.V(min.X, 0, min.Z),
		model.V(max.X, 0, min.Z),
		model.V(min.X, 0, max.Z),
		model.V(max.X, 0, max.Z),
	}
	var out AABB
	for i, c := range corners {
		p := c.RotateY(it.Rotation.Y)
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		out = out.Union(AABB{Min: p, Max: p})
	}
	out.Min.Y, out.Max.Y = min.Y, max.Y
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = out.Max.Y, out.Min.Y
	}
	out.Min = out.Min.Add(it.Position)
	out.Max = out.Max.Add(it.Position)
	return out
}

// Find returns the object with the given id.
func (s Scene) Find(id string) (Object, bool) {
	for _, o := range s.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return Object{}, false
}

// Pick returns the nearest object hit by the ray.
func (s Scene) Pick(r Ray) (string, bool) {
	best := -1
	bestT := 0.0
	for i, o := range s.Objects {
		t, ok := o.Bounds.RayIntersect(r)
		if !ok {
			continue
		}
		if best < 0 || t < bestT {
			best, bestT = i, t
		}
	}
	if best < 0 {
		return "", false
	}
	return s.Objects[best].ID, true
}
