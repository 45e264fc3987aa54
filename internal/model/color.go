package model

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses #RGB or #RRGGBB into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// HexOrBlack parses s and falls back to opaque black.
func HexOrBlack(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

// ToHex formats c as #RRGGBB.
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Shade lightens (amount > 0) or darkens (amount < 0) a hex color by adding
// amount to every channel. Invalid input is returned unchanged.
func Shade(hex string, amount int) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	adj := func(v uint8) uint8 {
		n := int(v) + amount
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return ToHex(color.RGBA{R: adj(c.R), G: adj(c.G), B: adj(c.B), A: 255})
}
