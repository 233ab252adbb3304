package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/teamnotfound/signup-backend/internal/config"
)

func CORS(cfg *config.Config) fiber.Handler {
	// Cookies carry the session, so credentials are allowed whenever the
	// origin list is explicit. Fiber rejects credentials with a wildcard.
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Device-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: cfg.CORSOrigins != "*",
	})
}
