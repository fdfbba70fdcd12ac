package handler

import (
	"context"
	"time"

	"internhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler takes a nil cache when caching is disabled.
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

type readiness struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Live)
	r.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// Ready reports whether the database answers within two seconds. The cache
// is reported but never fails readiness: reads fall through to Postgres.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	state := readiness{Database: ping(ctx, h.db), Cache: "disabled"}
	if h.cache != nil {
		state.Cache = ping(ctx, h.cache)
	}
	if state.Database != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, state)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, state)
}

func ping(ctx context.Context, p Pinger) string {
	if p == nil || p.Ping(ctx) != nil {
		return "down"
	}
	return "up"
}
