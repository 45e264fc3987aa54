// Package api serves designs, furniture edits and plan renders over HTTP.
package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"roomdesigner/internal/auth"
	"roomdesigner/internal/store"
)

type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AccessLog enables the per-request log line.
	AccessLog bool
	NewID     func(prefix string) string
}

type Server struct {
	app    *fiber.App
	store  *store.Store
	users  *auth.Service
	tokens *auth.TokenManager
	log    logrus.FieldLogger
	newID  func(prefix string) string
}

func New(s *store.Store, users *auth.Service, tokens *auth.TokenManager, log logrus.FieldLogger, opts Options) *Server {
	if opts.NewID == nil {
		opts.NewID = store.NewID
	}
	srv := &Server{
		store:  s,
		users:  users,
		tokens: tokens,
		log:    log,
		newID:  opts.NewID,
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		AppName:      "Room Designer",
	})

	app.Use(recover.New())
	app.Use(requestID())
	if opts.AccessLog {
		app.Use(accessLog())
	}
	app.Use(observe())

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")
	v1.Post("/login", srv.login)
	v1.Post("/register", srv.register)
	v1.Get("/catalog", srv.listCatalog)
	v1.Get("/layouts", srv.listLayouts)

	designs := v1.Group("/designs", srv.requireAuth)
	designs.Get("/", srv.listDesigns)
	designs.Post("/", srv.createDesign)
	designs.Get("/:id", srv.getDesign)
	designs.Patch("/:id", srv.patchDesign)
	designs.Delete("/:id", srv.deleteDesign)
	designs.Post("/:id/furniture", srv.addFurniture)
	designs.Patch("/:id/furniture/:itemId", srv.patchFurniture)
	designs.Delete("/:id/furniture/:itemId", srv.deleteFurniture)
	designs.Get("/:id/plan.png", srv.planPNG)
	designs.Get("/:id/plan.svg", srv.planSVG)

	srv.app = app
	return srv
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	s.log.WithField("addr", addr).Info("Starting HTTP API")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
