package scene3d

import (
	"math"

	"roomdesigner/internal/model"
)

type AABB struct {
	Min model.Vec3
	Max model.Vec3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size model.Vec3) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (a AABB) Center() model.Vec3 { return a.Min.Add(a.Max).Scale(0.5) }

func (a AABB) Size() model.Vec3 { return a.Max.Sub(a.Min) }

func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: model.V(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: model.V(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Ray is a half-line; Dir need not be normalized.
type Ray struct {
	Origin model.Vec3
	Dir    model.Vec3
}

func (r Ray) At(t float64) model.Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// slab intersects one axis slab and narrows [tmin, tmax]. ok is false when
// the ray is parallel to the slab and outside it.
func slab(origin, dir, lo, hi float64, tmin, tmax *float64) bool {
	if dir == 0 {
		return origin >= lo && origin <= hi
	}
	t1 := (lo - origin) / dir
	t2 := (hi - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return true
}

// RayIntersect returns the ray parameter of the first hit in front of the
// origin. A ray starting inside the box hits at its exit point.
func (a AABB) RayIntersect(r Ray) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	if !slab(r.Origin.X, r.Dir.X, a.Min.X, a.Max.X, &tmin, &tmax) ||
		!slab(r.Origin.Y, r.Dir.Y, a.Min.Y, a.Max.Y, &tmin, &tmax) ||
		!slab(r.Origin.Z, r.Dir.Z, a.Min.Z, a.Max.Z, &tmin, &tmax) {
		return 0, false
	}
	if tmin > tmax || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
