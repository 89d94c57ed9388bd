package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"scrumcmd/internal/analytics"
	"scrumcmd/internal/models"
)

func exportSnapshot() analytics.Snapshot {
	return analytics.Snapshot{
		Employees: []models.Employee{
			{ID: "e1", Name: "Arun Mehta", Role: "Backend", Email: "arun@example.com", Status: models.EmployeeActive, JoinedDate: "2025-01-15"},
			{ID: "e2", Name: "Beena Rao", Role: "Frontend", Email: "beena@example.com", Status: models.EmployeeActive, JoinedDate: "2025-06-01"},
		},
		Projects: []models.Project{
			{ID: "p1", Name: "Apollo"},
			{ID: "p2", Name: "Borealis"},
		},
		Tasks: []models.Task{
			{ID: "t1", Title: "Cross-cutting work", ProjectID: "p1,p2", AssignedToID: "e1,e2", Status: models.TaskInProgress, Priority: models.PriorityHigh, DueDate: "2026-04-01", CreatedAt: "2026-03-01T00:00:00.000Z"},
			{ID: "t2", Title: "Orphaned task", ProjectID: "", AssignedToID: "", Status: models.TaskTodo, Priority: models.PriorityLow, DueDate: "", CreatedAt: "2026-03-02T00:00:00.000Z"},
			{ID: "t3", Title: "Stale reference", ProjectID: "gone", AssignedToID: "e1", Status: models.TaskDone, Priority: models.PriorityMedium, DueDate: "2026-03-05", CreatedAt: "2026-03-03T00:00:00.000Z"},
		},
	}
}

func TestTasksCSV(t *testing.T) {
	out, err := TasksCSV(exportSnapshot())
	if err != nil {
		t.Fatalf("TasksCSV failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(records))
	}
	if records[0][0] != "Title" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][1] != "Apollo, Borealis" || records[1][2] != "Arun Mehta, Beena Rao" {
		t.Errorf("multi-reference sets not resolved: %v", records[1])
	}
	if records[2][1] != "Unassigned" || records[2][2] != "Unassigned" {
		t.Errorf("empty sets should render Unassigned: %v", records[2])
	}
	if records[3][1] != "gone" {
		t.Errorf("dangling reference should fall back to the raw ID: %v", records[3])
	}
}

func TestEmployeesCSV(t *testing.T) {
	out, err := EmployeesCSV(exportSnapshot())
	if err != nil {
		t.Fatalf("EmployeesCSV failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[1][0] != "Arun Mehta" || records[1][3] != "Active" {
		t.Errorf("unexpected row: %v", records[1])
	}
}

func TestTasksXLSX(t *testing.T) {
	out, err := TasksXLSX(exportSnapshot())
	if err != nil {
		t.Fatalf("TasksXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Tasks")
	if err != nil {
		t.Fatalf("Tasks sheet missing: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Title" || rows[1][0] != "Cross-cutting work" {
		t.Errorf("unexpected sheet content: %v", rows[:2])
	}
	if rows[1][1] != "Apollo, Borealis" {
		t.Errorf("project set not resolved: %v", rows[1])
	}
}

func TestMinutesHTML(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	m := models.Meeting{
		Title:       "Sprint Review <3",
		Date:        "2026-03-13",
		Agenda:      "## Topics\n- demo\n- retro",
		Notes:       "We agreed the **export** work ships next.",
		ActionItems: "- [ ] draft CSV layout",
		Decisions:   "",
	}

	doc, err := MinutesHTML(m, []string{"Arun Mehta", "Beena Rao"}, "Apollo", now)
	if err != nil {
		t.Fatalf("MinutesHTML failed: %v", err)
	}

	for _, want := range []string{
		"Sprint Review &lt;3",
		"<strong>Date:</strong> 2026-03-13",
		"<strong>Project:</strong> Apollo",
		"Arun Mehta, Beena Rao",
		"Agenda",
		"<strong>export</strong>",
		"Generated from ScrumCMD • 2026-03-14",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// markdown rendered, not passed through
	if !strings.Contains(doc, "<li>demo</li>") {
		t.Error("list items should be rendered as HTML")
	}
	// the empty Decisions section is omitted
	if strings.Contains(doc, "Decisions Made") {
		t.Error("empty section must be omitted")
	}
}

func TestMinutesHTMLDefaults(t *testing.T) {
	doc, err := MinutesHTML(models.Meeting{Title: "Quick sync", Date: "2026-03-01"}, nil, "", time.Now())
	if err != nil {
		t.Fatalf("MinutesHTML failed: %v", err)
	}
	if !strings.Contains(doc, "<strong>Attendees:</strong> None") {
		t.Error("no attendees should render None")
	}
	if !strings.Contains(doc, "<strong>Project:</strong> —") {
		t.Error("no project should render a dash")
	}
}
