package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/google/uuid"

	"roomdesigner/internal/auth"
	"roomdesigner/internal/metrics"
	"roomdesigner/internal/model"
)

const (
	requestIDHeader = "X-Request-ID"
	userLocal       = "user"
)

func requestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

func accessLog() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | ${respHeader:X-Request-ID}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

// observe records request count and latency per route pattern.
func observe() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		path := c.Route().Path
		metrics.ObserveHTTPRequest(c.Method(), path, strconv.Itoa(status), time.Since(start))
		return err
	}
}

// requireAuth validates the bearer token and stores the caller in locals.
func (s *Server) requireAuth(c fiber.Ctx) error {
	raw, err := auth.ExtractToken(c.Get("Authorization"))
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	claims, err := s.tokens.ValidateToken(raw)
	if err != nil {
		s.log.WithError(err).Debug("Rejected token")
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	u, ok := s.users.Lookup(claims.UserID)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unknown user"})
	}
	c.Locals(userLocal, u)
	return c.Next()
}

func caller(c fiber.Ctx) model.User {
	u, _ := c.Locals(userLocal).(model.User)
	return u
}
