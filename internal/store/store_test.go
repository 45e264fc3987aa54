package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"roomdesigner/internal/logger"
	"roomdesigner/internal/model"
	"roomdesigner/internal/storage"
)

func frozenClock() func() time.Time {
	t := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func seqIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestStore(kv storage.KV) *Store {
	return New(kv, WithLogger(logger.Discard()), WithIDGenerator(seqIDs()))
}

type failingKV struct {
	storage.KV
	err error
}

func (f failingKV) Put(context.Context, string, []byte) error { return f.err }

func TestCreateDesignBecomesCurrent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(storage.NewMemory())

	d, err := s.CreateDesign(ctx, "u1", "Den", model.DefaultRoom())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.CreatedAt != d.UpdatedAt {
		t.Errorf("Expected createdAt == updatedAt, got %v and %v", d.CreatedAt, d.UpdatedAt)
	}
	if len(d.Furniture) != 0 || d.Furniture == nil {
		t.Errorf("Expected empty non-nil furniture, got %v", d.Furniture)
	}

	cur, ok := s.CurrentDesignID()
	if !ok || cur != d.ID {
		t.Errorf("Expected current %s, got %s (ok=%v)", d.ID, cur, ok)
	}

	got, ok := s.GetDesign(d.ID)
	if !ok || got.Name != "Den" || got.OwnerID != "u1" {
		t.Errorf("Expected stored design, got %+v (ok=%v)", got, ok)
	}
}

func TestDeleteCurrentClearsPointer(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(storage.NewMemory())

	a, _ := s.CreateDesign(ctx, "u1", "A", model.DefaultRoom())
	b, _ := s.CreateDesign(ctx, "u1", "B", model.DefaultRoom())

	if err := s.DeleteDesign(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.CurrentDesignID(); ok {
		t.Error("Expected current pointer cleared")
	}
	if _, ok := s.GetDesign(b.ID); ok {
		t.Error("Expected deleted design to be gone")
	}
	if _, ok := s.GetDesign(a.ID); !ok {
		t.Error("Expected other design to survive")
	}

	// deleting a non-current design keeps the pointer
	s.SetCurrentDesign(ctx, a.ID)
	c, _ := s.CreateDesign(ctx, "u1", "C", model.DefaultRoom())
	s.SetCurrentDesign(ctx, a.ID)
	s.DeleteDesign(ctx, c.ID)
	if cur, _ := s.CurrentDesignID(); cur != a.ID {
		t.Errorf("Expected current %s, got %s", a.ID, cur)
	}
}

func TestUpdateIsStrictlyMonotonic(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemory(), WithLogger(logger.Discard()), WithClock(frozenClock()))

	d, _ := s.CreateDesign(ctx, "u1", "A", model.DefaultRoom())
	room := model.RoomSettings{Width: 10, Length: 12, Height: 8, WallColor: "#000000", FloorColor: "#111111"}
	if err := s.UpdateDesign(ctx, d.ID, DesignPatch{RoomSettings: &room}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := s.GetDesign(d.ID)
	if got.RoomSettings != room {
		t.Errorf("Expected room %+v, got %+v", room, got.RoomSettings)
	}
	if !got.UpdatedAt.After(d.UpdatedAt) {
		t.Errorf("Expected updatedAt to advance past %v, got %v", d.UpdatedAt, got.UpdatedAt)
	}
	if got.Name != "A" {
		t.Errorf("Expected untouched name, got %s", got.Name)
	}
}

func TestKnownDesignIsAlwaysStamped(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemory(), WithLogger(logger.Discard()), WithClock(frozenClock()))
	d, _ := s.CreateDesign(ctx, "u1", "A", model.DefaultRoom())
	name := "x"

	steps := []struct {
		name string
		fn   func() error
	}{
		{"empty design patch", func() error { return s.UpdateDesign(ctx, d.ID, DesignPatch{}) }},
		{"update unknown item", func() error { return s.UpdateFurnitureItem(ctx, d.ID, "nope", ItemPatch{Name: &name}) }},
		{"empty item patch", func() error { return s.UpdateFurnitureItem(ctx, d.ID, "nope", ItemPatch{}) }},
		{"remove unknown item", func() error { return s.RemoveFurnitureItem(ctx, d.ID, "nope") }},
	}

	prev := d.UpdatedAt
	for _, step := range steps {
		if err := step.fn(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		got, _ := s.GetDesign(d.ID)
		if !got.UpdatedAt.After(prev) {
			t.Errorf("%s: expected updatedAt past %v, got %v", step.name, prev, got.UpdatedAt)
		}
		if len(got.Furniture) != 0 || got.Name != "A" {
			t.Errorf("%s: expected design content untouched, got %+v", step.name, got)
		}
		prev = got.UpdatedAt
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	s := newTestStore(kv)
	name := "x"

	checks := []error{
		s.UpdateDesign(ctx, "missing", DesignPatch{Name: &name}),
		s.DeleteDesign(ctx, "missing"),
		s.AddFurnitureItem(ctx, "missing", model.FurnitureItem{ID: "i"}),
		s.RemoveFurnitureItem(ctx, "missing", "i"),
		s.UpdateFurnitureItem(ctx, "missing", "i", ItemPatch{Name: &name}),
		s.SetCurrentDesign(ctx, "missing"),
	}
	for i, err := range checks {
		if err != nil {
			t.Errorf("check %d: expected nil error, got %v", i, err)
		}
	}
	if _, ok, _ := kv.Get(ctx, storage.DesignKey); ok {
		t.Error("Expected nothing written for no-op mutations")
	}
	if _, ok := s.CurrentDesignID(); ok {
		t.Error("Expected no current design")
	}
}

func TestFurnitureMutations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(storage.NewMemory())
	d, _ := s.CreateDesign(ctx, "u1", "A", model.DefaultRoom())

	chair := model.FurnitureItem{ID: "c1", Type: model.TypeChair, Scale: model.V(1, 1, 1), Color: "#000000"}
	s.AddFurnitureItem(ctx, d.ID, chair)
	s.AddFurnitureItem(ctx, d.ID, model.FurnitureItem{ID: "c1", Type: model.TypeSofa})

	got, _ := s.GetDesign(d.ID)
	if len(got.Furniture) != 1 || got.Furniture[0].Type != model.TypeChair {
		t.Fatalf("Expected duplicate add ignored, got %+v", got.Furniture)
	}

	color := "#FF0000"
	pos := model.V(3, 0, 4)
	s.UpdateFurnitureItem(ctx, d.ID, "c1", ItemPatch{Color: &color, Position: &pos})
	got, _ = s.GetDesign(d.ID)
	if got.Furniture[0].Color != color || got.Furniture[0].Position != pos {
		t.Errorf("Expected patched item, got %+v", got.Furniture[0])
	}

	s.RemoveFurnitureItem(ctx, d.ID, "c1")
	got, _ = s.GetDesign(d.ID)
	if len(got.Furniture) != 0 {
		t.Errorf("Expected empty furniture, got %+v", got.Furniture)
	}

	s.ReplaceFurniture(ctx, d.ID, []model.FurnitureItem{{ID: "a"}, {ID: "b"}, {ID: "a", Name: "dup"}})
	got, _ = s.GetDesign(d.ID)
	if len(got.Furniture) != 2 || got.Furniture[0].Name == "dup" {
		t.Errorf("Expected later duplicate dropped, got %+v", got.Furniture)
	}
}

func TestReturnedDesignsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(storage.NewMemory())
	d, _ := s.CreateDesign(ctx, "u1", "A", model.DefaultRoom())
	s.AddFurnitureItem(ctx, d.ID, model.FurnitureItem{ID: "x", Name: "orig"})

	got, _ := s.GetDesign(d.ID)
	got.Furniture[0].Name = "mutated"

	again, _ := s.GetDesign(d.ID)
	if again.Furniture[0].Name != "orig" {
		t.Error("Store state leaked through a returned design")
	}
}

func TestGetUserDesignsInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(storage.NewMemory())
	s.CreateDesign(ctx, "u1", "first", model.DefaultRoom())
	s.CreateDesign(ctx, "u2", "other", model.DefaultRoom())
	s.CreateDesign(ctx, "u1", "second", model.DefaultRoom())

	ds := s.GetUserDesigns("u1")
	if len(ds) != 2 || ds[0].Name != "first" || ds[1].Name != "second" {
		t.Errorf("Expected [first second], got %+v", ds)
	}
	if got := s.GetUserDesigns("nobody"); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", got)
	}
}

func TestLoadSeedsOnce(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	s := newTestStore(kv)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	seeded := s.GetUserDesigns("1")
	if len(seeded) != 7 {
		t.Fatalf("Expected 7 seeded designs, got %d", len(seeded))
	}
	if seeded[0].Name != "Living Room" {
		t.Errorf("Expected Living Room first, got %s", seeded[0].Name)
	}
	for i := 1; i < len(seeded); i++ {
		if !seeded[i].CreatedAt.After(seeded[i-1].CreatedAt) {
			t.Errorf("Expected seeded timestamps to increase at %d", i)
		}
	}

	s.CreateDesign(ctx, "2", "Mine", model.DefaultRoom())

	reloaded := newTestStore(kv)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n := len(reloaded.Designs()); n != 8 {
		t.Errorf("Expected 8 designs after reload, got %d", n)
	}
	cur, ok := reloaded.CurrentDesign()
	if !ok || cur.Name != "Mine" {
		t.Errorf("Expected current design restored, got %+v (ok=%v)", cur, ok)
	}
}

func TestPersistFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	s := newTestStore(failingKV{KV: storage.NewMemory(), err: boom})

	d, err := s.CreateDesign(ctx, "u1", "A", model.DefaultRoom())
	if !errors.Is(err, boom) {
		t.Fatalf("Expected persist error, got %v", err)
	}
	if _, ok := s.GetDesign(d.ID); !ok {
		t.Error("Expected design kept in memory after a failed write")
	}
}

func TestOnChangeFiresAfterCommit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(storage.NewMemory())

	var ids []string
	s.OnChange(func(id string) {
		// reading from a listener must not deadlock
		s.GetDesign(id)
		ids = append(ids, id)
	})

	d, _ := s.CreateDesign(ctx, "u1", "A", model.DefaultRoom())
	name := "B"
	s.UpdateDesign(ctx, d.ID, DesignPatch{Name: &name})
	s.UpdateDesign(ctx, "missing", DesignPatch{Name: &name})

	if len(ids) != 2 || ids[0] != d.ID || ids[1] != d.ID {
		t.Errorf("Expected two notifications for %s, got %v", d.ID, ids)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "designs.db"))
	if err != nil {
		t.Fatal(err)
	}
	kv, err := storage.NewSQLite(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	s := newTestStore(kv)
	d, err := s.CreateDesign(ctx, "u1", "Den", model.DefaultRoom())
	if err != nil {
		t.Fatal(err)
	}
	item := model.FurnitureItem{ID: "i1", Type: model.TypeDesk, Position: model.V(1, 0, 2), Scale: model.V(1.5, 0.75, 0.8), Color: "#5F4F39"}
	if err := s.AddFurnitureItem(ctx, d.ID, item); err != nil {
		t.Fatal(err)
	}

	other := newTestStore(kv)
	if err := other.Load(ctx); err != nil {
		t.Fatal(err)
	}
	got, ok := other.GetDesign(d.ID)
	if !ok {
		t.Fatal("Expected design after reload")
	}
	if len(got.Furniture) != 1 || got.Furniture[0] != item {
		t.Errorf("Expected %+v, got %+v", item, got.Furniture)
	}
	want, _ := s.GetDesign(d.ID)
	if !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("Expected updatedAt %v, got %v", want.UpdatedAt, got.UpdatedAt)
	}
}
