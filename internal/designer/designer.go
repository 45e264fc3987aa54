// Package designer coordinates one editing session: it owns the working
// copy of a design, routes scene engine events into it and decides when the
// design store is written.
package designer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"roomdesigner/internal/event"
	"roomdesigner/internal/model"
	"roomdesigner/internal/plan2d"
	"roomdesigner/internal/scene3d"
	"roomdesigner/internal/store"
)

const newDesignName = "New Design"

// Scale and rotation steps used by the item controls.
const (
	ScaleStep   = 0.1
	MinScale    = 0.1
	RotateStep  = math.Pi / 2
	defaultMode = model.ViewSplit
)

var (
	ErrNoUser         = errors.New("no signed-in user")
	ErrNoActiveDesign = errors.New("no active design")
)

// DesignStore is the part of the design store a session needs.
type DesignStore interface {
	GetDesign(id string) (model.Design, bool)
	CurrentDesign() (model.Design, bool)
	CreateDesign(ctx context.Context, ownerID, name string, room model.RoomSettings) (model.Design, error)
	UpdateDesign(ctx context.Context, id string, patch store.DesignPatch) error
	SetCurrentDesign(ctx context.Context, id string) error
}

// State is the snapshot handed to redraw listeners.
type State struct {
	DesignID   string
	Name       string
	Room       model.RoomSettings
	Furniture  []model.FurnitureItem
	SelectedID string
	ViewMode   model.ViewMode
	Dirty      bool
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

type Designer struct {
	store DesignStore
	log   logrus.FieldLogger
	newID func(prefix string) string

	user      model.User
	designID  string
	name      string
	room      model.RoomSettings
	furniture []model.FurnitureItem
	selected  string
	viewMode  model.ViewMode
	dirty     bool

	// OnChange fires after every change to room, furniture, selection,
	// name or view mode.
	OnChange event.Signal[State]
}

type Option func(*Designer)

func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Designer) { d.log = l }
}

// WithIDGenerator replaces the item id generator, for tests.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(d *Designer) { d.newID = gen }
}

func New(s DesignStore, opts ...Option) *Designer {
	d := &Designer{
		store:     s,
		log:       logrus.StandardLogger(),
		newID:     store.NewID,
		name:      newDesignName,
		room:      model.DefaultRoom(),
		furniture: []model.FurnitureItem{},
		viewMode:  defaultMode,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open starts a session for user. A known designID is loaded and becomes
// current; an unknown one, or none with no usable current design, creates
// a fresh "New Design" with the default room.
func (d *Designer) Open(ctx context.Context, designID string, user model.User) error {
	if user.ID == "" {
		return ErrNoUser
	}
	d.user = user
	d.selected = ""
	d.dirty = false

	if designID != "" {
		if design, ok := d.store.GetDesign(designID); ok {
			d.load(design)
			return d.store.SetCurrentDesign(ctx, designID)
		}
		d.log.WithField("design", designID).Warn("Design not found, starting a new one")
	} else if design, ok := d.store.CurrentDesign(); ok && canEdit(user, design) {
		d.load(design)
		return nil
	}

	design, err := d.store.CreateDesign(ctx, user.ID, newDesignName, model.DefaultRoom())
	d.load(design)
	if err != nil {
		return fmt.Errorf("create design: %w", err)
	}
	return nil
}

func canEdit(u model.User, design model.Design) bool {
	return design.OwnerID == u.ID || u.Role == model.RoleAdmin
}

func (d *Designer) load(design model.Design) {
	d.designID = design.ID
	d.name = design.Name
	d.room = design.RoomSettings
	d.furniture = model.CloneItems(design.Furniture)
	if d.furniture == nil {
		d.furniture = []model.FurnitureItem{}
	}
	d.notify()
}

// State returns a snapshot of the session.
func (d *Designer) State() State {
	return State{
		DesignID:   d.designID,
		Name:       d.name,
		Room:       d.room,
		Furniture:  model.CloneItems(d.furniture),
		SelectedID: d.selected,
		ViewMode:   d.viewMode,
		Dirty:      d.dirty,
	}
}

func (d *Designer) notify() {
	d.OnChange.Invoke(d.State())
}

// Selected returns the selected item, if any.
func (d *Designer) Selected() (model.FurnitureItem, bool) {
	i := model.FindItem(d.furniture, d.selected)
	if i < 0 {
		return model.FurnitureItem{}, false
	}
	return d.furniture[i], true
}

func (d *Designer) SetViewMode(m model.ViewMode) {
	if !m.Valid() || m == d.viewMode {
		return
	}
	d.viewMode = m
	d.notify()
}

// Select changes the selection. An empty id deselects; unknown ids are
// ignored.
func (d *Designer) Select(id string) {
	if id != "" && model.FindItem(d.furniture, id) < 0 {
		return
	}
	if id == d.selected {
		return
	}
	d.selected = id
	d.notify()
}

// --- continuous edits: memory only ---

// MoveItem updates an item's position without saving.
func (d *Designer) MoveItem(id string, pos model.Vec3) {
	i := model.FindItem(d.furniture, id)
	if i < 0 {
		return
	}
	d.furniture[i].Position = pos
	d.dirty = true
	d.notify()
}

// RotateItem updates an item's rotation without saving.
func (d *Designer) RotateItem(id string, rot model.Vec3) {
	i := model.FindItem(d.furniture, id)
	if i < 0 {
		return
	}
	d.furniture[i].Rotation = rot
	d.dirty = true
	d.notify()
}

// --- structural edits: saved immediately ---

// Save writes name, room and furniture to the store.
func (d *Designer) Save(ctx context.Context) error {
	if d.user.ID == "" {
		return ErrNoUser
	}
	if d.designID == "" {
		return ErrNoActiveDesign
	}
	name, room := d.name, d.room
	err := d.store.UpdateDesign(ctx, d.designID, store.DesignPatch{
		Name:         &name,
		RoomSettings: &room,
		Furniture:    model.CloneItems(d.furniture),
	})
	if err != nil {
		return fmt.Errorf("save design %s: %w", d.designID, err)
	}
	if d.dirty {
		d.dirty = false
		d.notify()
	}
	return nil
}

// UpdateRoom replaces the room settings. Dimensions are clamped.
func (d *Designer) UpdateRoom(ctx context.Context, room model.RoomSettings) error {
	d.room = model.ClampRoom(room)
	d.notify()
	return d.Save(ctx)
}

// ApplyRoomInput parses raw form values. Invalid input leaves the current
// room untouched.
func (d *Designer) ApplyRoomInput(ctx context.Context, width, length, height, wallColor, floorColor string) error {
	room, err := model.ParseRoomInput(width, length, height, wallColor, floorColor)
	if err != nil {
		return err
	}
	return d.UpdateRoom(ctx, room)
}

// AddTemplate places a new item from the catalogue at the room center and
// selects it.
func (d *Designer) AddTemplate(ctx context.Context, tmpl model.TemplateItem) (model.FurnitureItem, error) {
	item := tmpl.Spawn(d.newID("item"), d.room.Center())
	d.furniture = append(d.furniture, item)
	d.selected = item.ID
	d.notify()
	return item, d.Save(ctx)
}

// UpdateSelected merges patch into the selected item. No selection is a
// no-op.
func (d *Designer) UpdateSelected(ctx context.Context, patch store.ItemPatch) error {
	i := model.FindItem(d.furniture, d.selected)
	if i < 0 || patch.Empty() {
		return nil
	}
	patch.Apply(&d.furniture[i])
	d.notify()
	return d.Save(ctx)
}

// ScaleSelected steps one scale axis of the selected item, never below
// MinScale, rounded to one decimal.
func (d *Designer) ScaleSelected(ctx context.Context, axis Axis, delta float64) error {
	it, ok := d.Selected()
	if !ok {
		return nil
	}
	s := it.Scale
	step := func(v float64) float64 {
		return math.Max(MinScale, math.Round((v+delta)*10)/10)
	}
	switch axis {
	case AxisX:
		s.X = step(s.X)
	case AxisY:
		s.Y = step(s.Y)
	case AxisZ:
		s.Z = step(s.Z)
	default:
		return fmt.Errorf("unknown axis %d", axis)
	}
	return d.UpdateSelected(ctx, store.ItemPatch{Scale: &s})
}

// RotateSelected turns the selected item around the vertical axis.
func (d *Designer) RotateSelected(ctx context.Context, angle float64) error {
	it, ok := d.Selected()
	if !ok {
		return nil
	}
	rot := it.Rotation
	rot.Y += angle
	return d.UpdateSelected(ctx, store.ItemPatch{Rotation: &rot})
}

// RemoveSelected deletes the selected item and clears the selection.
func (d *Designer) RemoveSelected(ctx context.Context) error {
	i := model.FindItem(d.furniture, d.selected)
	if i < 0 {
		return nil
	}
	d.furniture = append(d.furniture[:i:i], d.furniture[i+1:]...)
	d.selected = ""
	d.notify()
	return d.Save(ctx)
}

// Rename sets the design name. Blank names are ignored.
func (d *Designer) Rename(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || name == d.name {
		return nil
	}
	d.name = name
	d.notify()
	return d.Save(ctx)
}

// --- engine wiring ---

// Bind2D connects a plan engine: its selection and moves flow into the
// session, and every session change is pushed back into the engine.
func (d *Designer) Bind2D(e *plan2d.Engine) {
	e.OnSelect.AddListener(d.Select)
	e.OnMove.AddListener(func(m model.Move) { d.MoveItem(m.ItemID, m.Position) })
	d.OnChange.AddListener(func(s State) { e.Sync(s.Room, s.Furniture, s.SelectedID) })
	e.Sync(d.room, d.furniture, d.selected)
}

// Bind3D connects a 3D scene engine the same way.
func (d *Designer) Bind3D(e *scene3d.Engine) {
	e.OnSelect.AddListener(d.Select)
	e.OnMove.AddListener(func(m model.Move) { d.MoveItem(m.ItemID, m.Position) })
	e.OnRotate.AddListener(func(r model.Rotate) { d.RotateItem(r.ItemID, r.Rotation) })
	d.OnChange.AddListener(func(s State) { e.Sync(s.Room, s.Furniture, s.SelectedID) })
	e.Sync(d.room, d.furniture, d.selected)
}
