package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/models"
	"scrumcmd/internal/services"
)

// BlockerHandler handles blocker HTTP requests
type BlockerHandler struct {
	blockers *services.BlockerService
}

// NewBlockerHandler creates a new blocker handler
func NewBlockerHandler(blockers *services.BlockerService) *BlockerHandler {
	return &BlockerHandler{blockers: blockers}
}

// List returns all blockers, newest report first
// GET /api/blockers
func (h *BlockerHandler) List(c *fiber.Ctx) error {
	blockers, err := h.blockers.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if blockers == nil {
		blockers = []models.Blocker{}
	}
	return c.JSON(blockers)
}

// Resolve marks a blocker resolved
// PATCH /api/blockers/:id/resolve
func (h *BlockerHandler) Resolve(c *fiber.Ctx) error {
	if err := h.blockers.Resolve(c.Params("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
