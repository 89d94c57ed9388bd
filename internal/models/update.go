package models

// DailyUpdate is a standup-style progress report. Submitting one may
// cascade into a task status change and a new blocker; the row itself is
// always stored even when no task matches the reported title.
type DailyUpdate struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	ProjectID  string `json:"projectId"`
	TaskTitle  string `json:"taskTitle"`
	Date       string `json:"date"` // calendar date, YYYY-MM-DD
	Yesterday  string `json:"yesterday"`
	Today      string `json:"today"`
	Blockers   string `json:"blockers,omitempty"`
	Progress   int    `json:"progress"` // 0-100
	CreatedAt  string `json:"createdAt"`
}
