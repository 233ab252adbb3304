package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/teamnotfound/signup-backend/internal/apperr"
	"github.com/teamnotfound/signup-backend/internal/dto"
)

// respondError maps a workflow error onto the uniform error body. Internal
// failures are logged with request context; their details never reach the
// client.
func respondError(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(), "path", c.Path(),
			"request_id", requestID(c), "error", err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: apperr.Message(err)})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
