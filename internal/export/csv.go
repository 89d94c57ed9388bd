// Package export renders store data into the downloadable report
// formats: CSV and XLSX task tables and a printable meeting-minutes
// document.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"scrumcmd/internal/analytics"
	"scrumcmd/internal/refset"
)

var taskHeader = []string{"Title", "Projects", "Assignees", "Status", "Priority", "Due Date", "Created At"}

// TasksCSV renders every task as a CSV table. Reference sets are
// resolved to names; an empty set renders as Unassigned.
func TasksCSV(snap analytics.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(taskHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range taskRows(snap) {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// EmployeesCSV renders the team roster as a CSV table
func EmployeesCSV(snap analytics.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Role", "Email", "Status", "Joined Date"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range snap.Employees {
		row := []string{e.Name, e.Role, e.Email, string(e.Status), e.JoinedDate}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func taskRows(snap analytics.Snapshot) [][]string {
	projectNames := map[string]string{}
	for _, p := range snap.Projects {
		projectNames[p.ID] = p.Name
	}
	employeeNames := map[string]string{}
	for _, e := range snap.Employees {
		employeeNames[e.ID] = e.Name
	}

	rows := make([][]string, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		rows = append(rows, []string{
			t.Title,
			resolveSet(t.ProjectID, projectNames),
			resolveSet(t.AssignedToID, employeeNames),
			string(t.Status),
			string(t.Priority),
			t.DueDate,
			t.CreatedAt,
		})
	}
	return rows
}

// resolveSet maps a delimited ID set to a readable name list. IDs whose
// referent no longer exists fall back to the raw ID rather than
// disappearing.
func resolveSet(set string, names map[string]string) string {
	ids := refset.Decode(set)
	if len(ids) == 0 {
		return "Unassigned"
	}
	resolved := make([]string, len(ids))
	for i, id := range ids {
		if name, ok := names[id]; ok {
			resolved[i] = name
		} else {
			resolved[i] = id
		}
	}
	return strings.Join(resolved, ", ")
}
