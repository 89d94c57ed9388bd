package models

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "In Progress"
	TaskBlocked    TaskStatus = "Blocked"
	TaskDone       TaskStatus = "Done"
)

// TaskPriority is shared by tasks and projects
type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

// Task represents a unit of work. ProjectID and AssignedToID are
// comma-delimited ID sets (see the refset package); either may be empty,
// in which case views render the task as Unassigned.
type Task struct {
	ID           string       `json:"id"`
	ProjectID    string       `json:"projectId"`
	AssignedToID string       `json:"assignedToId"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       TaskStatus   `json:"status"`
	Priority     TaskPriority `json:"priority"`
	DueDate      string       `json:"dueDate"`   // calendar date, YYYY-MM-DD
	CreatedAt    string       `json:"createdAt"` // ISO-8601 timestamp
	UpdatedAt    string       `json:"updatedAt"`
}

// TaskNote is an append-only comment on a task
type TaskNote struct {
	ID        string `json:"id"`
	TaskID    string `json:"taskId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}
