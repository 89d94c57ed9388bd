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

// EmployeeHandler handles team roster HTTP requests
type EmployeeHandler struct {
	employees *services.EmployeeService
	snapshots *snapshotLoader
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employees *services.EmployeeService, snapshots *snapshotLoader) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, snapshots: snapshots}
}

// List returns all employees
// GET /api/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return c.JSON(employees)
}

// Create adds an employee to the roster
// POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var e models.Employee
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if e.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	created, err := h.employees.Create(e)
	if err != nil {
		log.Printf("❌ [EMPLOYEE] Failed to create: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateStatus toggles an employee between Active and Inactive
// PATCH /api/employees/:id/status
func (h *EmployeeHandler) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status models.EmployeeStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.employees.UpdateStatus(c.Params("id"), req.Status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete removes an employee and unassigns their tasks
// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.employees.Delete(id); err != nil {
		log.Printf("❌ [EMPLOYEE] Failed to delete %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Stats returns the profile-page task breakdown for one employee
// GET /api/employees/:id/stats
func (h *EmployeeHandler) Stats(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	today := time.Now().UTC().Format("2006-01-02")
	return c.JSON(analytics.StatsForEmployee(snap, c.Params("id"), today))
}

// WeeklySummary returns the employee's recent task history by week
// GET /api/employees/:id/weekly-summary
func (h *EmployeeHandler) WeeklySummary(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	weeks := analytics.WeeklySummary(snap, c.Params("id"))
	if weeks == nil {
		weeks = []analytics.WeekSummary{}
	}
	return c.JSON(weeks)
}
