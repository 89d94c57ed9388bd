package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/analytics"
	"scrumcmd/internal/models"
)

// DashboardHandler serves the dashboard's derived views
type DashboardHandler struct {
	snapshots *snapshotLoader
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(snapshots *snapshotLoader) *DashboardHandler {
	return &DashboardHandler{snapshots: snapshots}
}

// Stats returns the four headline counters
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	today := time.Now().UTC().Format("2006-01-02")
	return c.JSON(analytics.Stats(snap, today))
}

// Overdue returns tasks past their due date, earliest first
// GET /api/dashboard/overdue
func (h *DashboardHandler) Overdue(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	today := time.Now().UTC().Format("2006-01-02")
	overdue := analytics.OverdueTasks(snap, today)
	if overdue == nil {
		overdue = []models.Task{}
	}
	return c.JSON(overdue)
}

// Recent returns the eight newest tasks, matching the dashboard panel
// GET /api/dashboard/recent
func (h *DashboardHandler) Recent(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(analytics.RecentTasks(snap, 8))
}
