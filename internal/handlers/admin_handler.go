package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/teamnotfound/signup-backend/internal/dto"
	"github.com/teamnotfound/signup-backend/internal/services"
	"github.com/teamnotfound/signup-backend/internal/session"
)

type AdminHandler struct {
	admin    *services.AdminService
	sessions *fibersession.Store
}

func NewAdminHandler(admin *services.AdminService, sessions *fibersession.Store) *AdminHandler {
	return &AdminHandler{admin: admin, sessions: sessions}
}

// Login checks the shared secret and marks the session as admin on match.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if !h.admin.VerifyPassword(req.Password) {
		slog.Info("admin login rejected", "ip", c.IP())
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Invalid password",
		})
	}

	if err := session.Apply(c, h.sessions, session.Update{SetAdmin: true}); err != nil {
		return respondError(c, err)
	}

	slog.Info("admin login", "ip", c.IP())
	return c.JSON(dto.AdminLoginResponse{Success: true})
}

func (h *AdminHandler) Status(c *fiber.Ctx) error {
	ident, err := session.Load(c, h.sessions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AdminStatusResponse{IsAdmin: ident.IsAdmin})
}

// Logout drops the admin flag, keeping any member identity on the session.
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	if err := session.ClearAdmin(c, h.sessions); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me reflects the session's member identity.
func (h *AdminHandler) Me(c *fiber.Ctx) error {
	ident, err := session.Load(c, h.sessions)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.MeResponse{}
	if ident.UserID != "" {
		resp.UserID = &ident.UserID
	}
	return c.JSON(resp)
}
