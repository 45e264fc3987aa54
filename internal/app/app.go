// Package app is the desktop designer window.
package app

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"roomdesigner/internal/auth"
	"roomdesigner/internal/designer"
	"roomdesigner/internal/plan2d"
	"roomdesigner/internal/scene3d"
	"roomdesigner/internal/store"
	"roomdesigner/internal/view3d"
)

type Config struct {
	Width  int32
	Height int32
	Title  string
	FPS    int32
	// DesignID is opened after sign-in; empty resumes the current design.
	DesignID string
}

const statusDuration = 2.5

type App struct {
	cfg   Config
	log   logrus.FieldLogger
	ctx   context.Context
	store *store.Store
	users *auth.Service

	designer *designer.Designer
	plan     *plan2d.Engine
	scene    *scene3d.Engine
	view     *view3d.View

	planTex    rl.Texture2D
	planLoaded bool
	planDirty  bool
	planDrag   bool

	fields fields

	designScroll  int32
	confirmDelete string

	status     string
	statusErr  bool
	statusTime float64
}

func New(cfg Config, s *store.Store, users *auth.Service, log logrus.FieldLogger) *App {
	a := &App{
		cfg:   cfg,
		log:   log,
		store: s,
		users: users,
		plan:  plan2d.NewEngine(),
		scene: scene3d.NewEngine(),
	}
	a.fields.values = map[string]string{}
	a.designer = designer.New(s, designer.WithLogger(log))
	a.designer.Bind2D(a.plan)
	a.designer.Bind3D(a.scene)
	a.designer.OnChange.AddListener(func(st designer.State) {
		a.planDirty = true
		if a.fields.active == "" {
			a.fields.loadRoom(st)
		}
	})
	return a
}

// Run opens the window and blocks until it is closed.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(a.cfg.Width, a.cfg.Height, a.cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(a.cfg.FPS)
	rl.SetExitKey(0)

	initRayguiStyle()
	a.view = view3d.New(a.cfg.Width/2, a.cfg.Height)
	defer a.view.Unload()
	defer a.unloadPlan()

	if u, ok := a.users.Current(); ok {
		if err := a.open(a.cfg.DesignID, u.ID); err != nil {
			a.setStatus(err.Error(), true)
		}
	}

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		a.frame()
	}
	return a.flush()
}

// flush saves pending moves before the window goes away.
func (a *App) flush() error {
	if !a.designer.State().Dirty {
		return nil
	}
	if err := a.designer.Save(a.ctx); err != nil {
		return fmt.Errorf("save on exit: %w", err)
	}
	return nil
}

func (a *App) open(designID, userID string) error {
	u, ok := a.users.Lookup(userID)
	if !ok {
		return fmt.Errorf("unknown user %s", userID)
	}
	if err := a.designer.Open(a.ctx, designID, u); err != nil {
		a.log.WithError(err).Error("Failed to open design")
		return err
	}
	a.fields.loadRoom(a.designer.State())
	a.log.WithField("design", a.designer.State().DesignID).Info("Opened design")
	return nil
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	a.statusTime = rl.GetTime()
}

func (a *App) frame() {
	_, signedIn := a.users.Current()
	width, height := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())

	if !signedIn {
		rl.BeginDrawing()
		rl.ClearBackground(colorBgWindow)
		a.drawLogin(width, height)
		a.drawStatus(width)
		rl.EndDrawing()
		return
	}

	st := a.designer.State()
	l := computeLayout(width, height, st.ViewMode)

	a.handleShortcuts()
	if l.Plan.Width > 0 {
		a.handlePlanInput(l.Plan)
	}
	if l.Scene.Width > 0 {
		a.view.Resize(int32(l.Scene.Width), int32(l.Scene.Height))
		if !a.fields.editing() {
			a.view.HandleInput(a.scene, l.Scene)
		}
		a.view.Render(a.scene)
	}

	rl.BeginDrawing()
	rl.ClearBackground(colorBgWindow)

	if l.Plan.Width > 0 {
		a.drawPlan(l.Plan)
	}
	if l.Scene.Width > 0 {
		a.view.Draw(l.Scene)
		rl.DrawRectangleLinesEx(l.Scene, 1, colorBorder)
	}
	a.drawSidebar(l.Sidebar)
	a.drawInspector(l.Inspector)
	a.drawToolbar(l.Toolbar)
	a.drawStatus(width)

	rl.EndDrawing()
}

func (a *App) handleShortcuts() {
	if a.fields.editing() {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		a.save()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.scene.ToggleMode()
	}
	if rl.IsKeyPressed(rl.KeyDelete) {
		a.report(a.designer.RemoveSelected(a.ctx), "Item removed")
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.designer.Select("")
	}
}

func (a *App) save() {
	if err := a.designer.Save(a.ctx); err != nil {
		a.setStatus(fmt.Sprintf("Save failed: %v", err), true)
		return
	}
	a.setStatus("Design saved!", false)
}

// report surfaces a persistence error. ok is shown on success when set.
func (a *App) report(err error, ok string) {
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	if ok != "" {
		a.setStatus(ok, false)
	}
}

func (a *App) drawStatus(width float32) {
	if a.status == "" || rl.GetTime()-a.statusTime > statusDuration {
		return
	}
	color := colorSuccess
	if a.statusErr {
		color = colorError
	}
	w := rl.MeasureText(a.status, 16)
	drawText(a.status, int32(width)/2-w/2, toolbarHeight+12, 16, color)
}
