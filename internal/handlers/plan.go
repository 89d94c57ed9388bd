package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/analytics"
	"scrumcmd/internal/models"
	"scrumcmd/internal/services"
)

// PlanHandler handles project-plan HTTP requests
type PlanHandler struct {
	plans *services.PlanService
}

// NewPlanHandler creates a new project-plan handler
func NewPlanHandler(plans *services.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// List returns all plans with their card-header progress
// GET /api/project-plans
func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.plans.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	type planView struct {
		models.ProjectPlan
		Progress int `json:"progress"`
	}
	views := make([]planView, 0, len(plans))
	for _, p := range plans {
		views = append(views, planView{ProjectPlan: p, Progress: analytics.PlanProgress(p.Items)})
	}
	return c.JSON(views)
}

// Create stores a new plan
// POST /api/project-plans
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var p models.ProjectPlan
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if p.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	created, err := h.plans.Create(p)
	if err != nil {
		log.Printf("❌ [PLAN] Failed to create: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces a plan's title, project link, and items
// PUT /api/project-plans/:id
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	var p models.ProjectPlan
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.plans.Update(c.Params("id"), p)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

// Delete removes a plan
// DELETE /api/project-plans/:id
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.plans.Delete(c.Params("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Gantt returns the positioned timeline for a plan
// GET /api/project-plans/:id/gantt
func (h *PlanHandler) Gantt(c *fiber.Ctx) error {
	p, err := h.plans.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	today := time.Now().UTC().Format("2006-01-02")
	return c.JSON(analytics.GanttLayout(p.Items, today))
}
