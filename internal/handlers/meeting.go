package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/export"
	"scrumcmd/internal/models"
	"scrumcmd/internal/refset"
	"scrumcmd/internal/services"
)

// MeetingHandler handles meeting-minutes HTTP requests
type MeetingHandler struct {
	meetings  *services.MeetingService
	employees *services.EmployeeService
	projects  *services.ProjectService
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetings *services.MeetingService, employees *services.EmployeeService, projects *services.ProjectService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings, employees: employees, projects: projects}
}

// List returns all meetings, most recent first
// GET /api/meetings
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	meetings, err := h.meetings.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	return c.JSON(meetings)
}

// Create stores new meeting minutes
// POST /api/meetings
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	var m models.Meeting
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if m.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	created, err := h.meetings.Create(m)
	if err != nil {
		log.Printf("❌ [MEETING] Failed to create: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces meeting minutes
// PUT /api/meetings/:id
func (h *MeetingHandler) Update(c *fiber.Ctx) error {
	var m models.Meeting
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.meetings.Update(c.Params("id"), m)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

// Delete removes a meeting
// DELETE /api/meetings/:id
func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	if err := h.meetings.Delete(c.Params("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Print renders a meeting as a printable HTML document
// GET /api/meetings/:id/print
func (h *MeetingHandler) Print(c *fiber.Ctx) error {
	m, err := h.meetings.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var attendeeNames []string
	for _, id := range refset.Decode(m.AttendeeIDs) {
		if e, err := h.employees.GetByID(id); err == nil {
			attendeeNames = append(attendeeNames, e.Name)
		}
	}

	var projectName string
	if m.ProjectID != "" {
		if p, err := h.projects.GetByID(m.ProjectID); err == nil {
			projectName = p.Name
		}
	}

	doc, err := export.MinutesHTML(*m, attendeeNames, projectName, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}
