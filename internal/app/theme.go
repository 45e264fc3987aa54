package app

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light theme in the blues of the plan selection color.
var (
	colorBgWindow  = rl.NewColor(249, 250, 251, 255)
	colorBgPanel   = rl.NewColor(255, 255, 255, 255)
	colorBgElement = rl.NewColor(243, 244, 246, 255)
	colorBgHover   = rl.NewColor(229, 231, 235, 255)
	colorBgActive  = rl.NewColor(219, 234, 254, 255)

	colorAccent      = rl.NewColor(59, 130, 246, 255)
	colorAccentDark  = rl.NewColor(37, 99, 235, 255)
	colorAccentLight = rl.NewColor(147, 197, 253, 255)

	colorTextPrimary   = rl.NewColor(17, 24, 39, 255)
	colorTextSecondary = rl.NewColor(75, 85, 99, 255)
	colorTextMuted     = rl.NewColor(156, 163, 175, 255)

	colorBorder  = rl.NewColor(229, 231, 235, 255)
	colorSuccess = rl.NewColor(22, 163, 74, 255)
	colorError   = rl.NewColor(220, 38, 38, 255)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccentLight))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccentDark))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorBorder))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

func drawText(text string, x, y int32, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}

func drawHeader(text string, x, y int32) int32 {
	drawText(text, x, y, 16, colorTextPrimary)
	return y + 24
}
