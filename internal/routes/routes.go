package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/teamnotfound/signup-backend/internal/handlers"
	"github.com/teamnotfound/signup-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	sessions *fibersession.Store,
	adminHandler *handlers.AdminHandler,
	projectHandler *handlers.ProjectHandler,
	memberHandler *handlers.MemberHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/me", adminHandler.Me)

	// Admin login gets a stricter limit: 10 req/min per IP
	admin := api.Group("/admin")
	admin.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), adminHandler.Login)
	admin.Get("/status", adminHandler.Status)
	admin.Post("/logout", adminHandler.Logout)

	// Public project reads
	api.Get("/projects", projectHandler.List)
	api.Get("/projects/:id", projectHandler.Get)
	api.Get("/projects/:id/members", projectHandler.Members)

	// Project mutations are admin only
	api.Post("/projects", middleware.AdminRequired(sessions), projectHandler.Create)
	api.Delete("/projects/:id", middleware.AdminRequired(sessions), projectHandler.Delete)

	// Member registration and self-service removal
	api.Post("/members", memberHandler.Create)
	api.Delete("/members/:id", memberHandler.Delete)
}
