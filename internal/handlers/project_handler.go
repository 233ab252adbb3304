package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/teamnotfound/signup-backend/internal/dto"
	"github.com/teamnotfound/signup-backend/internal/services"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projects.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Project not found",
		})
	}

	project, err := h.projects.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Members(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Project not found",
		})
	}

	members, err := h.projects.Members(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(members)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid project data",
		})
	}

	project, err := h.projects.Create(c.Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid project id",
		})
	}

	if err := h.projects.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
