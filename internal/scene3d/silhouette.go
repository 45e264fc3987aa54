package scene3d

import "roomdesigner/internal/model"

// Part is one box of a furniture silhouette, in item-local units before the
// item scale is applied. Shade lightens or darkens the item color.
type Part struct {
	Offset model.Vec3
	Size   model.Vec3
	Shade  int
}

func box(ox, oy, oz, sx, sy, sz float64) Part {
	return Part{Offset: model.V(ox, oy, oz), Size: model.V(sx, sy, sz)}
}

func shaded(p Part, amount int) Part {
	p.Shade = amount
	return p
}

// legs returns four identical legs at (±x, y, ±z).
func legs(x, y, z, sx, sy, sz float64) []Part {
	return []Part{
		box(x, y, z, sx, sy, sz),
		box(-x, y, z, sx, sy, sz),
		box(x, y, -z, sx, sy, sz),
		box(-x, y, -z, sx, sy, sz),
	}
}

func join(groups ...[]Part) []Part {
	var out []Part
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// placeholder is drawn for types without a silhouette.
var placeholder = []Part{box(0, 0.5, 0, 1, 1, 1)}

var silhouettes = map[model.FurnitureType][]Part{
	model.TypeChair: join(
		[]Part{
			box(0, 0.25, 0, 0.5, 0.1, 0.5),
			box(0, 0.75, -0.2, 0.5, 0.9, 0.1),
		},
		legs(0.2, 0.125, 0.2, 0.05, 0.25, 0.05),
	),
	model.TypeTable: join(
		[]Part{box(0, 0.4, 0, 1.2, 0.1, 0.8)},
		legs(0.5, 0.2, 0.3, 0.1, 0.4, 0.1),
	),
	model.TypeSofa: {
		box(0, 0.2, 0, 2, 0.4, 0.8),
		box(0, 0.7, -0.3, 2, 1, 0.2),
		box(0.95, 0.5, 0, 0.1, 0.6, 0.8),
		box(-0.95, 0.5, 0, 0.1, 0.6, 0.8),
		shaded(box(0.5, 0.45, 0.1, 0.9, 0.1, 0.6), -20),
		shaded(box(-0.5, 0.45, 0.1, 0.9, 0.1, 0.6), -20),
	},
	model.TypeCoffeeTable: join(
		[]Part{box(0, 0.2, 0, 1.0, 0.05, 0.6)},
		legs(0.4, 0.1, 0.25, 0.05, 0.2, 0.05),
		[]Part{shaded(box(0, 0.05, 0, 0.9, 0.02, 0.5), -15)},
	),
	model.TypeDesk: join(
		[]Part{box(0, 0.4, 0, 1.5, 0.05, 0.75)},
		legs(0.7, 0.2, 0.325, 0.05, 0.4, 0.05),
		[]Part{
			shaded(box(0.4, 0.25, 0, 0.6, 0.3, 0.7), -10),
			box(0.4, 0.3, 0.36, 0.3, 0.02, 0.02),
			box(0.4, 0.2, 0.36, 0.3, 0.02, 0.02),
		},
	),
	model.TypeDiningTable: {
		box(0, 0.4, 0, 1.5, 0.1, 1.0),
		shaded(box(0, 0.15, 0, 0.3, 0.3, 0.3), -10),
		shaded(box(0, 0.025, 0, 0.8, 0.05, 0.8), -15),
	},
	model.TypeCabinet: join(
		[]Part{
			box(0, 0.6, 0, 1.2, 1.2, 0.5),
			shaded(box(-0.3, 0.6, 0.26, 0.55, 1.1, 0.05), 10),
			shaded(box(0.3, 0.6, 0.26, 0.55, 1.1, 0.05), 10),
			box(-0.05, 0.6, 0.3, 0.04, 0.04, 0.1),
			box(0.05, 0.6, 0.3, 0.04, 0.04, 0.1),
		},
		shadeAll(legs(0.5, 0.05, 0.2, 0.1, 0.1, 0.1), -20),
	),
	model.TypeBookshelf: {
		box(0, 1, -0.15, 1, 2, 0.05),
		box(-0.475, 1, 0, 0.05, 2, 0.3),
		box(0.475, 1, 0, 0.05, 2, 0.3),
		box(0, 0.025, 0, 1, 0.05, 0.3),
		box(0, 1.975, 0, 1, 0.05, 0.3),
		box(0, 0.5, 0, 0.95, 0.02, 0.3),
		box(0, 1.0, 0, 0.95, 0.02, 0.3),
		box(0, 1.5, 0, 0.95, 0.02, 0.3),
	},
}

func shadeAll(parts []Part, amount int) []Part {
	for i := range parts {
		parts[i].Shade = amount
	}
	return parts
}

// Silhouette returns the parts for a furniture type, falling back to a
// unit box for unknown types. The second result is false on fallback.
func Silhouette(t model.FurnitureType) ([]Part, bool) {
	if parts, ok := silhouettes[t]; ok {
		return parts, true
	}
	return placeholder, false
}

// localBounds is the union of all parts in item-local space.
func localBounds(parts []Part) AABB {
	b := NewAABBFromCenter(parts[0].Offset, parts[0].Size)
	for _, p := range parts[1:] {
		b = b.Union(NewAABBFromCenter(p.Offset, p.Size))
	}
	return b
}
