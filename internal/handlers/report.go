package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/analytics"
	"scrumcmd/internal/export"
)

// ReportHandler serves the report charts and file exports
type ReportHandler struct {
	snapshots *snapshotLoader
}

// NewReportHandler creates a new report handler
func NewReportHandler(snapshots *snapshotLoader) *ReportHandler {
	return &ReportHandler{snapshots: snapshots}
}

// TasksPerEmployee returns the workload bar-chart series
// GET /api/reports/tasks-per-employee
func (h *ReportHandler) TasksPerEmployee(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(analytics.TasksPerEmployee(snap))
}

// StatusDistribution returns the task status pie series
// GET /api/reports/status-distribution
func (h *ReportHandler) StatusDistribution(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(analytics.StatusDistribution(snap))
}

// TasksCSV downloads the task table as CSV
// GET /api/export/tasks.csv
func (h *ReportHandler) TasksCSV(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	out, err := export.TasksCSV(snap)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return sendDownload(c, out, "text/csv", "tasks")
}

// EmployeesCSV downloads the roster as CSV
// GET /api/export/employees.csv
func (h *ReportHandler) EmployeesCSV(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	out, err := export.EmployeesCSV(snap)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return sendDownload(c, out, "text/csv", "employees")
}

// TasksXLSX downloads the task table as an Excel workbook
// GET /api/export/tasks.xlsx
func (h *ReportHandler) TasksXLSX(c *fiber.Ctx) error {
	snap, err := h.snapshots.load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	out, err := export.TasksXLSX(snap)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	const mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	return sendDownload(c, out, mime, "tasks")
}

func sendDownload(c *fiber.Ctx, body []byte, contentType, name string) error {
	stamp := time.Now().UTC().Format("2006-01-02")
	ext := "csv"
	if contentType != "text/csv" {
		ext = "xlsx"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s-%s.%s"`, name, stamp, ext))
	return c.Send(body)
}
