// Package store is the single source of truth for designs. Every committed
// mutation is written through the storage port before the call returns.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"roomdesigner/internal/catalog"
	"roomdesigner/internal/event"
	"roomdesigner/internal/metrics"
	"roomdesigner/internal/model"
	"roomdesigner/internal/storage"
)

// record is the persisted shape under storage.DesignKey.
type record struct {
	Designs         []model.Design `json:"designs"`
	CurrentDesignID *string        `json:"currentDesignId"`
}

type Store struct {
	mu        sync.RWMutex
	kv        storage.KV
	log       logrus.FieldLogger
	now       func() time.Time
	newID     func(prefix string) string
	designs   []*model.Design
	currentID string
	lastStamp time.Time

	changed event.Signal[string]
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) { s.log = l }
}

func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		log:   logrus.StandardLogger(),
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns prefix-<uuid v7>. The ids sort by creation time.
func NewID(prefix string) string {
	return prefix + "-" + uuid.Must(uuid.NewV7()).String()
}

// Load replaces the in-memory state with the persisted record. An empty
// collection is seeded with the default layouts owned by the admin user.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, storage.DesignKey)
	if err != nil {
		return fmt.Errorf("load designs: %w", err)
	}

	var rec record
	if ok {
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decode designs: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.designs = s.designs[:0]
	s.currentID = ""
	for i := range rec.Designs {
		d := rec.Designs[i]
		if d.Furniture == nil {
			d.Furniture = []model.FurnitureItem{}
		}
		if d.UpdatedAt.After(s.lastStamp) {
			s.lastStamp = d.UpdatedAt
		}
		s.designs = append(s.designs, &d)
	}
	if rec.CurrentDesignID != nil && s.find(*rec.CurrentDesignID) != nil {
		s.currentID = *rec.CurrentDesignID
	}

	if len(s.designs) > 0 {
		s.log.WithField("designs", len(s.designs)).Info("Loaded designs")
		metrics.SetDesigns(len(s.designs))
		return nil
	}

	for _, l := range catalog.DefaultLayouts() {
		s.designs = append(s.designs, s.newDesign(catalog.AdminOwnerID, l.Name, l.Room))
	}
	s.log.WithField("designs", len(s.designs)).Info("Seeded default layouts")
	return s.persistLocked(ctx, "seed")
}

// OnChange subscribes fn to committed mutations. fn receives the affected
// design id and runs after the store lock is released.
func (s *Store) OnChange(fn func(designID string)) event.ListenerID {
	return s.changed.AddListener(fn)
}

func (s *Store) RemoveChangeListener(id event.ListenerID) {
	s.changed.RemoveListener(id)
}

// --- internals ---

func (s *Store) find(id string) *model.Design {
	for _, d := range s.designs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// stamp returns a timestamp strictly after the previous one.
func (s *Store) stamp() time.Time {
	t := s.now().UTC()
	if !t.After(s.lastStamp) {
		t = s.lastStamp.Add(time.Nanosecond)
	}
	s.lastStamp = t
	return t
}

func (s *Store) newDesign(owner, name string, room model.RoomSettings) *model.Design {
	now := s.stamp()
	return &model.Design{
		ID:           s.newID("design"),
		OwnerID:      owner,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
		RoomSettings: room,
		Furniture:    []model.FurnitureItem{},
	}
}

// persistLocked writes the whole collection. Callers hold s.mu.
func (s *Store) persistLocked(ctx context.Context, op string) error {
	rec := record{Designs: make([]model.Design, len(s.designs))}
	for i, d := range s.designs {
		rec.Designs[i] = *d
	}
	if s.currentID != "" {
		id := s.currentID
		rec.CurrentDesignID = &id
	}

	err := s.write(ctx, rec)
	metrics.ObserveMutation(op, err)
	metrics.SetDesigns(len(s.designs))
	if err != nil {
		s.log.WithError(err).WithField("op", op).Error("Failed to persist designs")
		return err
	}
	return nil
}

func (s *Store) write(ctx context.Context, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode designs: %w", err)
	}
	if err := s.kv.Put(ctx, storage.DesignKey, data); err != nil {
		return fmt.Errorf("save designs: %w", err)
	}
	return nil
}

// mutate applies fn to the design with the given id. fn returns false to
// signal that nothing changed; unknown ids are a no-op as well.
func (s *Store) mutate(ctx context.Context, op, id string, fn func(d *model.Design) bool) error {
	s.mu.Lock()
	d := s.find(id)
	if d == nil || !fn(d) {
		s.mu.Unlock()
		return nil
	}
	d.UpdatedAt = s.stamp()
	err := s.persistLocked(ctx, op)
	s.mu.Unlock()

	s.changed.Invoke(id)
	return err
}
