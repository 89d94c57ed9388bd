package models

// EmployeeStatus represents whether an employee is on the active roster
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// Employee represents a team member
type Employee struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Role       string         `json:"role"`
	Email      string         `json:"email"`
	Status     EmployeeStatus `json:"status"`
	JoinedDate string         `json:"joinedDate"` // calendar date, YYYY-MM-DD
	AvatarURL  string         `json:"avatarUrl,omitempty"`
}

// FirstName returns the label used in per-employee chart views
func (e Employee) FirstName() string {
	for i := 0; i < len(e.Name); i++ {
		if e.Name[i] == ' ' {
			return e.Name[:i]
		}
	}
	return e.Name
}
