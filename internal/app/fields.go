package app

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/designer"
)

// Field ids.
const (
	fieldWidth    = "width"
	fieldLength   = "length"
	fieldHeight   = "height"
	fieldWall     = "wall"
	fieldFloor    = "floor"
	fieldName     = "name"
	fieldColor    = "color"
	fieldEmail    = "email"
	fieldPassword = "password"
)

// fields holds the text inputs. At most one is being edited.
type fields struct {
	values map[string]string
	active string
	buffer string
}

func (f *fields) editing() bool { return f.active != "" }

func (f *fields) get(id string) string { return f.values[id] }

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// loadRoom copies the session state into the inputs.
func (f *fields) loadRoom(st designer.State) {
	f.values[fieldWidth] = formatNum(st.Room.Width)
	f.values[fieldLength] = formatNum(st.Room.Length)
	f.values[fieldHeight] = formatNum(st.Room.Height)
	f.values[fieldWall] = st.Room.WallColor
	f.values[fieldFloor] = st.Room.FloorColor
	f.values[fieldName] = st.Name
}

// draw renders an input and handles its editing. It reports true when the
// user confirmed a new value.
func (f *fields) draw(id string, bounds rl.Rectangle, masked bool) bool {
	mousePos := rl.GetMousePosition()
	hovered := rl.CheckCollisionPointRec(mousePos, bounds)
	editMode := f.active == id

	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(bounds, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(bounds, 0.2, 4, 1, colorAccent)
	}

	x, y := int32(bounds.X)+6, int32(bounds.Y)+int32(bounds.Height)/2-7
	if !editMode {
		text := f.values[id]
		if masked {
			text = strings.Repeat("*", len(text))
		}
		drawText(text, x, y, 14, colorTextSecondary)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			f.active = id
			f.buffer = f.values[id]
		}
		return false
	}

	shown := f.buffer
	if masked {
		shown = strings.Repeat("*", len(shown))
	}
	drawText(shown+"_", x, y, 14, colorTextPrimary)

	for {
		key := rl.GetCharPressed()
		if key == 0 {
			break
		}
		f.buffer += string(rune(key))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(f.buffer) > 0 {
		r := []rune(f.buffer)
		f.buffer = string(r[:len(r)-1])
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		f.active, f.buffer = "", ""
		return false
	}
	clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyTab) || clickedOutside {
		f.values[id] = f.buffer
		f.active, f.buffer = "", ""
		return true
	}
	return false
}
