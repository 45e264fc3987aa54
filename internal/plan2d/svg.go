package plan2d

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"roomdesigner/internal/model"
)

// RenderSVG draws the same plan as Render as an SVG document, element for
// element in the same order.
func RenderSVG(room model.RoomSettings, items []model.FurnitureItem, selectedID string) string {
	w, h := SurfaceSize(room)
	width, height := float64(w), float64(h)

	var elements []string
	elements = append(elements, fmt.Sprintf(`<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`,
		formatFloat(width), formatFloat(height), svgColor(room.FloorColor)))
	elements = append(elements, fmt.Sprintf(`<rect x="0" y="0" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
		formatFloat(width), formatFloat(height), svgColor(room.WallColor), formatFloat(wallWidth)))
	elements = append(elements, renderGrid(width, height))
	elements = append(elements, renderItems(items, selectedID)...)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(width), formatFloat(height), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String()
}

func renderGrid(width, height float64) string {
	var d strings.Builder
	for x := 0.0; x <= width; x += Scale {
		fmt.Fprintf(&d, "M%s 0V%s", formatFloat(x), formatFloat(height))
	}
	for y := 0.0; y <= height; y += Scale {
		fmt.Fprintf(&d, "M0 %sH%s", formatFloat(y), formatFloat(width))
	}
	return fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="1"/>`, d.String(), model.ToHex(gridColor))
}

func renderItems(items []model.FurnitureItem, selectedID string) []string {
	var out []string
	for _, it := range items {
		r := Footprint(it)
		x, y, w, h := formatFloat(r.X), formatFloat(r.Y), formatFloat(r.W), formatFloat(r.H)

		if it.ID == selectedID {
			out = append(out, fmt.Sprintf(`<rect class="selection" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
				x, y, w, h, model.ToHex(selectionColor), formatFloat(selectionWidth)))
		}
		out = append(out, fmt.Sprintf(`<rect id="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			html.EscapeString(it.ID), x, y, w, h, svgColor(it.Color)))

		cx, cy := r.Center()
		out = append(out, fmt.Sprintf(`<text x="%s" y="%s" fill="%s" font-size="10" text-anchor="middle" dominant-baseline="middle">%s</text>`,
			formatFloat(cx), formatFloat(cy), model.ToHex(labelColor), html.EscapeString(Label(it.Type))))
	}
	return out
}

func svgColor(hex string) string {
	return model.ToHex(model.HexOrBlack(hex))
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
