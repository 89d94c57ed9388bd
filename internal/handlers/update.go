package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/models"
	"scrumcmd/internal/services"
)

// UpdateHandler handles daily progress-update HTTP requests
type UpdateHandler struct {
	updates *services.UpdateService
}

// NewUpdateHandler creates a new daily-update handler
func NewUpdateHandler(updates *services.UpdateService) *UpdateHandler {
	return &UpdateHandler{updates: updates}
}

// List returns all daily updates, newest first
// GET /api/daily-updates
func (h *UpdateHandler) List(c *fiber.Ctx) error {
	updates, err := h.updates.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if updates == nil {
		updates = []models.DailyUpdate{}
	}
	return c.JSON(updates)
}

// Create stores a daily update and runs its status-inference cascade
// POST /api/daily-updates
func (h *UpdateHandler) Create(c *fiber.Ctx) error {
	var u models.DailyUpdate
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if u.EmployeeID == "" || u.TaskTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employeeId and taskTitle are required"})
	}
	if u.Progress < 0 || u.Progress > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "progress must be between 0 and 100"})
	}

	created, err := h.updates.Create(u)
	if err != nil {
		log.Printf("❌ [UPDATE] Failed to create: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
