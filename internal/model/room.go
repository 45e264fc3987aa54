package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Room dimension bounds in units.
const (
	MinRoomSide   = 5.0
	MaxRoomSide   = 50.0
	MinRoomHeight = 7.0
	MaxRoomHeight = 20.0
)

var ErrInvalidRoomInput = errors.New("invalid room input")

// Clamp limits v to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ClampRoom forces the room dimensions into their allowed ranges.
func ClampRoom(r RoomSettings) RoomSettings {
	r.Width = Clamp(r.Width, MinRoomSide, MaxRoomSide)
	r.Length = Clamp(r.Length, MinRoomSide, MaxRoomSide)
	r.Height = Clamp(r.Height, MinRoomHeight, MaxRoomHeight)
	return r
}

// ParseRoomInput turns raw form values into room settings. Any non-numeric
// dimension rejects the whole input; numeric values are clamped. Colors must
// be valid hex.
func ParseRoomInput(width, length, height, wallColor, floorColor string) (RoomSettings, error) {
	dims := [3]float64{}
	for i, raw := range [3]string{width, length, height} {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return RoomSettings{}, fmt.Errorf("%w: %q is not a number", ErrInvalidRoomInput, raw)
		}
		dims[i] = v
	}
	for _, c := range [2]string{wallColor, floorColor} {
		if _, err := ParseHex(c); err != nil {
			return RoomSettings{}, fmt.Errorf("%w: %v", ErrInvalidRoomInput, err)
		}
	}
	return ClampRoom(RoomSettings{
		Width:      dims[0],
		Length:     dims[1],
		Height:     dims[2],
		WallColor:  wallColor,
		FloorColor: floorColor,
	}), nil
}

// Rect is an axis-aligned rectangle on the floor plane, x along the room
// length and z along its width.
type Rect struct {
	MinX, MinZ, MaxX, MaxZ float64
}

func (r Rect) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxZ - r.MinZ }

// Footprint is the unrotated floor rectangle of an item, centered on its
// position and sized by its x/z scale.
func (it FurnitureItem) Footprint() Rect {
	hx, hz := it.Scale.X/2, it.Scale.Z/2
	return Rect{
		MinX: it.Position.X - hx,
		MinZ: it.Position.Z - hz,
		MaxX: it.Position.X + hx,
		MaxZ: it.Position.Z + hz,
	}
}

// ClampToRoom keeps an item's footprint inside the room on x and z.
// The y coordinate is passed through.
func ClampToRoom(pos, scale Vec3, room RoomSettings) Vec3 {
	return Vec3{
		X: Clamp(pos.X, scale.X/2, room.Length-scale.X/2),
		Y: pos.Y,
		Z: Clamp(pos.Z, scale.Z/2, room.Width-scale.Z/2),
	}
}
