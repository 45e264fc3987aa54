package model

import "time"

// FurnitureType names the kind of a furniture item. Unknown values are kept
// verbatim so designs written by newer catalogues still round-trip.
type FurnitureType string

const (
	TypeChair       FurnitureType = "chair"
	TypeTable       FurnitureType = "table"
	TypeSofa        FurnitureType = "sofa"
	TypeBed         FurnitureType = "bed"
	TypeBookshelf   FurnitureType = "bookshelf"
	TypeDesk        FurnitureType = "desk"
	TypeDiningTable FurnitureType = "diningTable"
	TypeCoffeeTable FurnitureType = "coffeeTable"
	TypeCabinet     FurnitureType = "cabinet"
	TypeLamp        FurnitureType = "lamp"
)

var knownTypes = map[FurnitureType]bool{
	TypeChair: true, TypeTable: true, TypeSofa: true, TypeBed: true,
	TypeBookshelf: true, TypeDesk: true, TypeDiningTable: true,
	TypeCoffeeTable: true, TypeCabinet: true, TypeLamp: true,
}

// Known reports whether t is one of the catalogue types.
func (t FurnitureType) Known() bool {
	return knownTypes[t]
}

// RoomSettings is an immutable snapshot of the room geometry and colors.
// Width runs along z, length along x, height along y.
type RoomSettings struct {
	Width      float64 `json:"width"`
	Length     float64 `json:"length"`
	Height     float64 `json:"height"`
	WallColor  string  `json:"wallColor"`
	FloorColor string  `json:"floorColor"`
}

// DefaultRoom is used for freshly created designs.
func DefaultRoom() RoomSettings {
	return RoomSettings{Width: 15, Length: 20, Height: 9, WallColor: "#FFFFFF", FloorColor: "#EEEEEE"}
}

// Center returns the floor-level center of the room.
func (r RoomSettings) Center() Vec3 {
	return Vec3{X: r.Length / 2, Y: 0, Z: r.Width / 2}
}

type FurnitureItem struct {
	ID        string        `json:"id"`
	Type      FurnitureType `json:"type"`
	Name      string        `json:"name"`
	Position  Vec3          `json:"position"`
	Rotation  Vec3          `json:"rotation"` // radians
	Scale     Vec3          `json:"scale"`
	Color     string        `json:"color"`
	ModelPath string        `json:"modelPath,omitempty"`
}

type Design struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"userId"`
	Name         string          `json:"name"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	RoomSettings RoomSettings    `json:"roomSettings"`
	Furniture    []FurnitureItem `json:"furniture"`
}

// Clone returns a copy that shares no mutable state with d.
func (d Design) Clone() Design {
	out := d
	out.Furniture = CloneItems(d.Furniture)
	return out
}

// CloneItems copies a furniture list. A nil list stays nil.
func CloneItems(items []FurnitureItem) []FurnitureItem {
	if items == nil {
		return nil
	}
	out := make([]FurnitureItem, len(items))
	copy(out, items)
	return out
}

// FindItem returns the index of the item with the given id, or -1.
func FindItem(items []FurnitureItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// TemplateItem is a catalogue entry used to spawn furniture.
type TemplateItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         FurnitureType `json:"type"`
	Thumbnail    string        `json:"thumbnail"`
	DefaultColor string        `json:"defaultColor"`
	DefaultScale Vec3          `json:"defaultScale"`
	ModelPath    string        `json:"modelPath,omitempty"`
}

// Spawn builds a furniture item from the template at pos with zero
// rotation.
func (t TemplateItem) Spawn(id string, pos Vec3) FurnitureItem {
	return FurnitureItem{
		ID:        id,
		Type:      t.Type,
		Name:      t.Name,
		Position:  pos,
		Scale:     t.DefaultScale,
		Color:     t.DefaultColor,
		ModelPath: t.ModelPath,
	}
}

type Category struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []TemplateItem `json:"items"`
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ViewMode selects which scene engines the designer shows.
type ViewMode string

const (
	View2D    ViewMode = "2d"
	View3D    ViewMode = "3d"
	ViewSplit ViewMode = "split"
)

// Valid reports whether m is one of the three view modes.
func (m ViewMode) Valid() bool {
	return m == View2D || m == View3D || m == ViewSplit
}

// Shows2D reports whether the 2D plan is visible in this mode.
func (m ViewMode) Shows2D() bool { return m == View2D || m == ViewSplit }

// Shows3D reports whether the 3D scene is visible in this mode.
func (m ViewMode) Shows3D() bool { return m == View3D || m == ViewSplit }

// Move is emitted by the scene engines when an item is dragged.
type Move struct {
	ItemID   string
	Position Vec3
}

// Rotate is emitted by the 3D gizmo when an item is turned.
type Rotate struct {
	ItemID   string
	Rotation Vec3
}
