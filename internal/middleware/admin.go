package middleware

import (
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/teamnotfound/signup-backend/internal/dto"
	"github.com/teamnotfound/signup-backend/internal/session"
)

// AdminRequired gates project-mutation endpoints to sessions marked admin by
// the shared-secret login.
func AdminRequired(sessions *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := session.Load(c, sessions)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: "Internal server error",
			})
		}
		if !ident.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Admin access required",
			})
		}
		return c.Next()
	}
}
