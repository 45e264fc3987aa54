package designer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"roomdesigner/internal/catalog"
	"roomdesigner/internal/logger"
	"roomdesigner/internal/model"
	"roomdesigner/internal/plan2d"
	"roomdesigner/internal/scene3d"
	"roomdesigner/internal/storage"
	"roomdesigner/internal/store"
)

var regular = model.User{ID: "2", Name: "Regular User", Email: "user@example.com", Role: model.RoleUser}

func seqIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newSession(t *testing.T) (*Designer, *store.Store) {
	t.Helper()
	s := store.New(storage.NewMemory(), store.WithLogger(logger.Discard()))
	d := New(s, WithLogger(logger.Discard()), WithIDGenerator(seqIDs()))
	if err := d.Open(context.Background(), "", regular); err != nil {
		t.Fatalf("open: %v", err)
	}
	return d, s
}

func template(t *testing.T, id string) model.TemplateItem {
	t.Helper()
	tmpl, ok := catalog.Template(id)
	if !ok {
		t.Fatalf("missing template %s", id)
	}
	return tmpl
}

func TestOpenCreatesNewDesign(t *testing.T) {
	d, s := newSession(t)
	st := d.State()

	if st.Name != "New Design" {
		t.Errorf("Expected New Design, got %s", st.Name)
	}
	if st.Room != model.DefaultRoom() {
		t.Errorf("Expected default room, got %+v", st.Room)
	}
	if st.ViewMode != model.ViewSplit {
		t.Errorf("Expected split view, got %s", st.ViewMode)
	}
	stored, ok := s.GetDesign(st.DesignID)
	if !ok || stored.OwnerID != regular.ID {
		t.Errorf("Expected stored design owned by %s, got %+v", regular.ID, stored)
	}
}

func TestOpenExistingDesign(t *testing.T) {
	ctx := context.Background()
	s := store.New(storage.NewMemory(), store.WithLogger(logger.Discard()))
	room := model.RoomSettings{Width: 10, Length: 12, Height: 8, WallColor: "#000000", FloorColor: "#111111"}
	existing, _ := s.CreateDesign(ctx, regular.ID, "Den", room)
	other, _ := s.CreateDesign(ctx, regular.ID, "Other", room)

	d := New(s, WithLogger(logger.Discard()))
	if err := d.Open(ctx, existing.ID, regular); err != nil {
		t.Fatal(err)
	}
	if d.State().Name != "Den" || d.State().Room != room {
		t.Errorf("Expected Den loaded, got %+v", d.State())
	}
	if cur, _ := s.CurrentDesignID(); cur != existing.ID {
		t.Errorf("Expected current %s, got %s (other=%s)", existing.ID, cur, other.ID)
	}

	if err := d.Open(ctx, "does-not-exist", regular); err != nil {
		t.Fatal(err)
	}
	if d.State().Name != "New Design" {
		t.Errorf("Expected a new design for an unknown id, got %s", d.State().Name)
	}
}

func TestOpenRequiresUser(t *testing.T) {
	d := New(store.New(storage.NewMemory(), store.WithLogger(logger.Discard())))
	if err := d.Open(context.Background(), "", model.User{}); !errors.Is(err, ErrNoUser) {
		t.Errorf("Expected ErrNoUser, got %v", err)
	}
}

func TestAddCoffeeTable(t *testing.T) {
	d, s := newSession(t)
	ctx := context.Background()

	item, err := d.AddTemplate(ctx, template(t, "table-2"))
	if err != nil {
		t.Fatal(err)
	}
	if item.Position != model.V(10, 0, 7.5) {
		t.Errorf("Expected room center (10,0,7.5), got %+v", item.Position)
	}
	if item.Rotation != (model.Vec3{}) {
		t.Errorf("Expected zero rotation, got %+v", item.Rotation)
	}
	if item.Scale != model.V(1.0, 0.4, 0.6) || item.Color != "#D2B48C" {
		t.Errorf("Expected template defaults, got %+v", item)
	}
	if d.State().SelectedID != item.ID {
		t.Error("Expected new item auto-selected")
	}

	stored, _ := s.GetDesign(d.State().DesignID)
	if len(stored.Furniture) != 1 || stored.Furniture[0].ID != item.ID {
		t.Errorf("Expected item saved immediately, got %+v", stored.Furniture)
	}

	st := d.State()
	svg := plan2d.RenderSVG(st.Room, st.Furniture, st.SelectedID)
	if !strings.Contains(svg, "coffeeTa..") {
		t.Error("Expected truncated coffeeTable label in the plan")
	}
}

func TestMovesStayInMemoryUntilSave(t *testing.T) {
	d, s := newSession(t)
	ctx := context.Background()
	item, _ := d.AddTemplate(ctx, template(t, "chair-1"))

	d.MoveItem(item.ID, model.V(3, 0, 4))
	d.RotateItem(item.ID, model.V(0, 1, 0))

	stored, _ := s.GetDesign(d.State().DesignID)
	if stored.Furniture[0].Position != model.V(10, 0, 7.5) {
		t.Errorf("Expected move not yet persisted, got %+v", stored.Furniture[0].Position)
	}
	if !d.State().Dirty {
		t.Error("Expected session marked dirty")
	}

	if err := d.Save(ctx); err != nil {
		t.Fatal(err)
	}
	stored, _ = s.GetDesign(d.State().DesignID)
	if stored.Furniture[0].Position != model.V(3, 0, 4) || stored.Furniture[0].Rotation.Y != 1 {
		t.Errorf("Expected move and rotation persisted, got %+v", stored.Furniture[0])
	}
	if d.State().Dirty {
		t.Error("Expected dirty cleared after save")
	}
}

func TestScaleAndRotateSelected(t *testing.T) {
	d, _ := newSession(t)
	ctx := context.Background()
	d.AddTemplate(ctx, template(t, "chair-1"))

	d.ScaleSelected(ctx, AxisX, ScaleStep)
	for i := 0; i < 10; i++ {
		d.ScaleSelected(ctx, AxisZ, -ScaleStep)
	}
	d.RotateSelected(ctx, RotateStep)

	it, _ := d.Selected()
	if it.Scale.X != 0.6 {
		t.Errorf("Expected x scale 0.6, got %v", it.Scale.X)
	}
	if it.Scale.Z != MinScale {
		t.Errorf("Expected z scale floored at %v, got %v", MinScale, it.Scale.Z)
	}
	if math.Abs(it.Rotation.Y-math.Pi/2) > 1e-12 {
		t.Errorf("Expected quarter turn, got %v", it.Rotation.Y)
	}
}

func TestUpdateAndRemoveSelected(t *testing.T) {
	d, s := newSession(t)
	ctx := context.Background()
	item, _ := d.AddTemplate(ctx, template(t, "sofa-1"))

	color := "#112233"
	if err := d.UpdateSelected(ctx, store.ItemPatch{Color: &color}); err != nil {
		t.Fatal(err)
	}
	stored, _ := s.GetDesign(d.State().DesignID)
	if stored.Furniture[0].Color != color {
		t.Errorf("Expected color saved, got %s", stored.Furniture[0].Color)
	}

	if err := d.RemoveSelected(ctx); err != nil {
		t.Fatal(err)
	}
	if d.State().SelectedID != "" {
		t.Error("Expected selection cleared")
	}
	stored, _ = s.GetDesign(d.State().DesignID)
	if model.FindItem(stored.Furniture, item.ID) >= 0 {
		t.Error("Expected item removed from the store")
	}

	// nothing selected: no-ops
	if err := d.UpdateSelected(ctx, store.ItemPatch{Color: &color}); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	if err := d.RemoveSelected(ctx); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func TestApplyRoomInput(t *testing.T) {
	d, s := newSession(t)
	ctx := context.Background()
	before := d.State().Room

	err := d.ApplyRoomInput(ctx, "abc", "20", "9", "#FFFFFF", "#EEEEEE")
	if !errors.Is(err, model.ErrInvalidRoomInput) {
		t.Errorf("Expected ErrInvalidRoomInput, got %v", err)
	}
	if d.State().Room != before {
		t.Error("Expected previous room retained on invalid input")
	}

	if err := d.ApplyRoomInput(ctx, "60", "12", "3", "#000000", "#FFFFFF"); err != nil {
		t.Fatal(err)
	}
	want := model.RoomSettings{Width: 50, Length: 12, Height: 7, WallColor: "#000000", FloorColor: "#FFFFFF"}
	if d.State().Room != want {
		t.Errorf("Expected %+v, got %+v", want, d.State().Room)
	}
	stored, _ := s.GetDesign(d.State().DesignID)
	if stored.RoomSettings != want {
		t.Errorf("Expected room saved, got %+v", stored.RoomSettings)
	}
}

func TestRename(t *testing.T) {
	d, s := newSession(t)
	ctx := context.Background()

	d.Rename(ctx, "  Lounge ")
	d.Rename(ctx, "   ")

	stored, _ := s.GetDesign(d.State().DesignID)
	if stored.Name != "Lounge" || d.State().Name != "Lounge" {
		t.Errorf("Expected Lounge, got store=%s session=%s", stored.Name, d.State().Name)
	}
}

func TestSelectAndViewMode(t *testing.T) {
	d, _ := newSession(t)
	ctx := context.Background()
	item, _ := d.AddTemplate(ctx, template(t, "chair-1"))

	notified := 0
	d.OnChange.AddListener(func(State) { notified++ })

	d.Select("")
	d.Select("unknown")
	d.Select(item.ID)
	d.SetViewMode(model.View3D)
	d.SetViewMode("bogus")

	if notified != 3 {
		t.Errorf("Expected 3 notifications, got %d", notified)
	}
	if d.State().SelectedID != item.ID || d.State().ViewMode != model.View3D {
		t.Errorf("Unexpected state %+v", d.State())
	}
}

func TestBind2DDragAndDeselectIn3D(t *testing.T) {
	d, s := newSession(t)
	ctx := context.Background()
	plan := plan2d.NewEngine()
	scene := scene3d.NewEngine()
	d.Bind2D(plan)
	d.Bind3D(scene)

	item, _ := d.AddTemplate(ctx, template(t, "chair-1"))
	d.Select("")

	// item sits at (10, 7.5) -> (200, 150) px
	plan.PointerDown(200, 150)
	if d.State().SelectedID != item.ID {
		t.Fatal("Expected 2D hit to select the item")
	}
	plan.PointerMove(240, 150)
	plan.PointerUp()

	it, _ := d.Selected()
	if it.Position.X != 12 || it.Position.Z != 7.5 {
		t.Errorf("Expected (12, 0, 7.5), got %+v", it.Position)
	}
	stored, _ := s.GetDesign(d.State().DesignID)
	if stored.Furniture[0].Position.X != 10 {
		t.Error("Expected drag not persisted before Save")
	}
	if o, ok := scene.Scene().Find(item.ID); !ok || o.Position.X != 12 {
		t.Error("Expected 3D scene to follow the 2D drag")
	}

	cam := model.V(20, 9, 15)
	scene.PointerDown(scene3d.Ray{Origin: cam, Dir: model.V(0, 1, 0)}, cam)
	if d.State().SelectedID != "" {
		t.Error("Expected background click in 3D to deselect")
	}
}
