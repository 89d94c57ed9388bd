package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/analytics"
	"scrumcmd/internal/models"
	"scrumcmd/internal/services"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projects  *services.ProjectService
	snapshots *snapshotLoader
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects *services.ProjectService, snapshots *snapshotLoader) *ProjectHandler {
	return &ProjectHandler{projects: projects, snapshots: snapshots}
}

// List returns all projects
// GET /api/projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projects.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return c.JSON(projects)
}

// Create adds a project
// POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var p models.Project
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if p.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	created, err := h.projects.Create(p)
	if err != nil {
		log.Printf("❌ [PROJECT] Failed to create: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateStatus changes a project's lifecycle status
// PATCH /api/projects/:id/status
func (h *ProjectHandler) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status models.ProjectStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.projects.UpdateStatus(c.Params("id"), req.Status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete removes a project, unlinking its tasks
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.projects.Delete(id); err != nil {
		log.Printf("❌ [PROJECT] Failed to delete %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Completion returns a project's done-task percentage
// GET /api/projects/:id/completion
func (h *ProjectHandler) Completion(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"completion": analytics.ProjectCompletion(snap, c.Params("id"))})
}
