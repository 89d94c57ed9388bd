package models

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
)

// Project represents a tracked project
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	StartDate   string        `json:"startDate"` // calendar date, YYYY-MM-DD
	Deadline    string        `json:"deadline"`
	Priority    TaskPriority  `json:"priority"`
	OwnerID     string        `json:"ownerId"` // employee reference, not enforced
	Status      ProjectStatus `json:"status"`
	Description string        `json:"description"`
}
