package handlers

import (
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/teamnotfound/signup-backend/internal/dto"
	"github.com/teamnotfound/signup-backend/internal/services"
	"github.com/teamnotfound/signup-backend/internal/session"
	"github.com/teamnotfound/signup-backend/internal/validation"
)

type MemberHandler struct {
	members  *services.MemberService
	sessions *fibersession.Store
}

func NewMemberHandler(members *services.MemberService, sessions *fibersession.Store) *MemberHandler {
	return &MemberHandler{members: members, sessions: sessions}
}

// Create registers a member. A successful registration binds the new member
// id into the caller's session; that is the visitor's "login".
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid member data",
		})
	}

	in := validation.MemberInput{
		Name:           req.Name,
		WhatsappNumber: req.WhatsappNumber,
		ProjectID:      req.ProjectID,
		SectionNumber:  req.SectionNumber,
		PhotoURL:       req.PhotoURL,
		DeviceID:       req.DeviceID,
	}

	member, upd, err := h.members.Register(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	if err := session.Apply(c, h.sessions, upd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(member)
}

// Delete removes a member when the guard chain allows it: the caller must be
// admin or the owner, and a recorded device token must match the X-Device-ID
// header.
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Member not found",
		})
	}

	ident, err := session.Load(c, h.sessions)
	if err != nil {
		return respondError(c, err)
	}

	upd, err := h.members.Remove(c.Context(), id, ident)
	if err != nil {
		return respondError(c, err)
	}
	if err := session.Apply(c, h.sessions, upd); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
