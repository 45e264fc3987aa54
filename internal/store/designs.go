package store

import (
	"context"

	"roomdesigner/internal/model"
)

// DesignPatch carries the fields to merge into a design. Nil fields are
// left alone; a non-nil empty Furniture slice clears the list.
type DesignPatch struct {
	Name         *string               `json:"name,omitempty"`
	RoomSettings *model.RoomSettings   `json:"roomSettings,omitempty"`
	Furniture    []model.FurnitureItem `json:"furniture,omitempty"`
}

// CreateDesign appends a new empty design and makes it current.
func (s *Store) CreateDesign(ctx context.Context, ownerID, name string, room model.RoomSettings) (model.Design, error) {
	s.mu.Lock()
	d := s.newDesign(ownerID, name, room)
	s.designs = append(s.designs, d)
	s.currentID = d.ID
	out := d.Clone()
	err := s.persistLocked(ctx, "create")
	s.mu.Unlock()

	s.log.WithField("design", out.ID).WithField("owner", ownerID).Debug("Created design")
	s.changed.Invoke(out.ID)
	return out, err
}

// UpdateDesign merges patch into the design and refreshes updatedAt, even
// for an empty patch. Unknown ids are ignored.
func (s *Store) UpdateDesign(ctx context.Context, id string, patch DesignPatch) error {
	return s.mutate(ctx, "update", id, func(d *model.Design) bool {
		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.RoomSettings != nil {
			d.RoomSettings = *patch.RoomSettings
		}
		if patch.Furniture != nil {
			d.Furniture = dedupe(patch.Furniture)
		}
		return true
	})
}

// DeleteDesign removes a design and clears the current pointer if it
// pointed at it.
func (s *Store) DeleteDesign(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, d := range s.designs {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.designs = append(s.designs[:idx], s.designs[idx+1:]...)
	if s.currentID == id {
		s.currentID = ""
	}
	err := s.persistLocked(ctx, "delete")
	s.mu.Unlock()

	s.changed.Invoke(id)
	return err
}

func (s *Store) GetDesign(id string) (model.Design, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.find(id)
	if d == nil {
		return model.Design{}, false
	}
	return d.Clone(), true
}

// GetUserDesigns returns the owner's designs in insertion order.
func (s *Store) GetUserDesigns(ownerID string) []model.Design {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Design{}
	for _, d := range s.designs {
		if d.OwnerID == ownerID {
			out = append(out, d.Clone())
		}
	}
	return out
}

// Designs returns every design in insertion order.
func (s *Store) Designs() []model.Design {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Design, len(s.designs))
	for i, d := range s.designs {
		out[i] = d.Clone()
	}
	return out
}

// SetCurrentDesign points the current pointer at id. Unknown ids are ignored.
func (s *Store) SetCurrentDesign(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.find(id) == nil || s.currentID == id {
		s.mu.Unlock()
		return nil
	}
	s.currentID = id
	err := s.persistLocked(ctx, "set_current")
	s.mu.Unlock()

	s.changed.Invoke(id)
	return err
}

func (s *Store) ClearCurrentDesign(ctx context.Context) error {
	s.mu.Lock()
	if s.currentID == "" {
		s.mu.Unlock()
		return nil
	}
	prev := s.currentID
	s.currentID = ""
	err := s.persistLocked(ctx, "clear_current")
	s.mu.Unlock()

	s.changed.Invoke(prev)
	return err
}

func (s *Store) CurrentDesignID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID, s.currentID != ""
}

// CurrentDesign resolves the current pointer.
func (s *Store) CurrentDesign() (model.Design, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentID == "" {
		return model.Design{}, false
	}
	d := s.find(s.currentID)
	if d == nil {
		return model.Design{}, false
	}
	return d.Clone(), true
}
