package app

import (
	"errors"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"roomdesigner/internal/auth"
)

func (a *App) drawLogin(width, height float32) {
	const w, h = 340, 230
	box := rl.Rectangle{X: (width - w) / 2, Y: (height - h) / 2, Width: w, Height: h}
	rl.DrawRectangleRounded(box, 0.05, 6, colorBgPanel)
	rl.DrawRectangleRoundedLinesEx(box, 0.05, 6, 1, colorBorder)

	x := int32(box.X) + 20
	y := drawHeader("Sign in to Room Designer", x, int32(box.Y)+20)
	y += 4

	drawText("Email", x, y, 13, colorTextSecondary)
	y += 18
	a.fields.draw(fieldEmail, rl.Rectangle{X: float32(x), Y: float32(y), Width: w - 40, Height: 26}, false)
	y += 34
	drawText("Password", x, y, 13, colorTextSecondary)
	y += 18
	submitted := a.fields.draw(fieldPassword, rl.Rectangle{X: float32(x), Y: float32(y), Width: w - 40, Height: 26}, true)
	y += 40

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: w - 40, Height: 28}, "Sign in") || submitted && rl.IsKeyPressed(rl.KeyEnter) {
		a.signIn()
	}
}

func (a *App) signIn() {
	u, err := a.users.Login(a.ctx, a.fields.get(fieldEmail), a.fields.get(fieldPassword))
	if errors.Is(err, auth.ErrInvalidCredentials) {
		a.setStatus("Invalid email or password", true)
		return
	}
	if err != nil {
		// the session is live even if it could not be persisted
		a.setStatus(err.Error(), true)
	}
	a.fields.values[fieldPassword] = ""
	if err := a.open(a.cfg.DesignID, u.ID); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.setStatus("Welcome, "+u.Name, false)
}
