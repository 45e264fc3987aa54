package store

import (
	"context"

	"roomdesigner/internal/model"
)

// ItemPatch carries the item fields to overwrite. The id is immutable.
type ItemPatch struct {
	Type     *model.FurnitureType `json:"type,omitempty"`
	Name     *string              `json:"name,omitempty"`
	Position *model.Vec3          `json:"position,omitempty"`
	Rotation *model.Vec3          `json:"rotation,omitempty"`
	Scale    *model.Vec3          `json:"scale,omitempty"`
	Color    *string              `json:"color,omitempty"`
}

// Apply overwrites the present fields of it.
func (p ItemPatch) Apply(it *model.FurnitureItem) {
	if p.Type != nil {
		it.Type = *p.Type
	}
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Position != nil {
		it.Position = *p.Position
	}
	if p.Rotation != nil {
		it.Rotation = *p.Rotation
	}
	if p.Scale != nil {
		it.Scale = *p.Scale
	}
	if p.Color != nil {
		it.Color = *p.Color
	}
}

func (p ItemPatch) Empty() bool {
	return p.Type == nil && p.Name == nil && p.Position == nil &&
		p.Rotation == nil && p.Scale == nil && p.Color == nil
}

// AddFurnitureItem appends item to the design. An item whose id already
// exists in the design is not added.
func (s *Store) AddFurnitureItem(ctx context.Context, designID string, item model.FurnitureItem) error {
	return s.mutate(ctx, "add_item", designID, func(d *model.Design) bool {
		if model.FindItem(d.Furniture, item.ID) >= 0 {
			s.log.WithField("design", designID).WithField("item", item.ID).Warn("Duplicate furniture id ignored")
			return false
		}
		d.Furniture = append(d.Furniture, item)
		return true
	})
}

// RemoveFurnitureItem drops the item from the design. The design's
// updatedAt is refreshed whenever the design exists, matched item or not.
func (s *Store) RemoveFurnitureItem(ctx context.Context, designID, itemID string) error {
	return s.mutate(ctx, "remove_item", designID, func(d *model.Design) bool {
		if i := model.FindItem(d.Furniture, itemID); i >= 0 {
			d.Furniture = append(d.Furniture[:i:i], d.Furniture[i+1:]...)
		}
		return true
	})
}

// UpdateFurnitureItem applies patch to the item. Like RemoveFurnitureItem it
// stamps the design even when the item id is unknown.
func (s *Store) UpdateFurnitureItem(ctx context.Context, designID, itemID string, patch ItemPatch) error {
	return s.mutate(ctx, "update_item", designID, func(d *model.Design) bool {
		if i := model.FindItem(d.Furniture, itemID); i >= 0 {
			patch.Apply(&d.Furniture[i])
		}
		return true
	})
}

// ReplaceFurniture swaps the whole furniture list. Later duplicates of an
// id are dropped.
func (s *Store) ReplaceFurniture(ctx context.Context, designID string, items []model.FurnitureItem) error {
	return s.mutate(ctx, "replace_items", designID, func(d *model.Design) bool {
		d.Furniture = dedupe(items)
		return true
	})
}

func dedupe(items []model.FurnitureItem) []model.FurnitureItem {
	seen := make(map[string]bool, len(items))
	out := make([]model.FurnitureItem, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}
