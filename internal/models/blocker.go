package models

// BlockerStatus represents whether a blocker is still in the way
type BlockerStatus string

const (
	BlockerOpen     BlockerStatus = "Open"
	BlockerResolved BlockerStatus = "Resolved"
)

// Blocker is created automatically when a daily update reports an
// obstruction. TaskTitle is a denormalized snapshot of what the task was
// called at report time, not a live reference.
type Blocker struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employeeId"`
	ProjectID    string        `json:"projectId"`
	TaskTitle    string        `json:"taskTitle"`
	Description  string        `json:"description"`
	ReportedDate string        `json:"reportedDate"` // calendar date, YYYY-MM-DD
	Status       BlockerStatus `json:"status"`
	ResolvedDate string        `json:"resolvedDate,omitempty"`
}
