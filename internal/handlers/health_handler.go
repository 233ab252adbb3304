package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teamnotfound/signup-backend/internal/dto"
)

// HealthHandler reports liveness plus the store's reachability. The ping is
// injected so tests and the memory store can pass a no-op.
type HealthHandler struct {
	ping func() error
}

func NewHealthHandler(ping func() error) *HealthHandler {
	if ping == nil {
		ping = func() error { return nil }
	}
	return &HealthHandler{ping: ping}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
