package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/models"
	"scrumcmd/internal/services"
)

// TaskHandler handles task and task-note HTTP requests
type TaskHandler struct {
	tasks *services.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns all tasks
// GET /api/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.tasks.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return c.JSON(tasks)
}

// Create adds a task
// POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var t models.Task
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if t.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	created, err := h.tasks.Create(t)
	if err != nil {
		log.Printf("❌ [TASK] Failed to create: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces a task's editable fields
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var t models.Task
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.tasks.Update(c.Params("id"), t)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

// UpdateStatus changes only a task's status
// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status models.TaskStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.tasks.UpdateStatus(c.Params("id"), req.Status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete removes a task and its notes
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.tasks.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListNotes returns a task's notes, newest first
// GET /api/tasks/:id/notes
func (h *TaskHandler) ListNotes(c *fiber.Ctx) error {
	notes, err := h.tasks.GetNotes(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if notes == nil {
		notes = []models.TaskNote{}
	}
	return c.JSON(notes)
}

// AddNote appends a note to a task
// POST /api/tasks/:id/notes
func (h *TaskHandler) AddNote(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}

	note, err := h.tasks.AddNote(c.Params("id"), req.Content)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}
