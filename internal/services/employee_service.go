package services

import (
	"database/sql"
	"fmt"

	"scrumcmd/internal/database"
	"scrumcmd/internal/logging"
	"scrumcmd/internal/models"
	"scrumcmd/internal/refset"
)

// EmployeeService handles employee CRUD and the unassignment cascade
type EmployeeService struct {
	db    *database.DB
	clock Clock
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(db *database.DB) *EmployeeService {
	return &EmployeeService{db: db, clock: realClock{}}
}

// GetAll returns every employee
func (s *EmployeeService) GetAll() ([]models.Employee, error) {
	rows, err := s.db.Query(`
		SELECT id, name, role, email, status, joinedDate, avatarUrl
		FROM employees
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var e models.Employee
		var avatar sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.Status, &e.JoinedDate, &avatar); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if avatar.Valid {
			e.AvatarURL = avatar.String
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// GetByID returns an employee by ID
func (s *EmployeeService) GetByID(id string) (*models.Employee, error) {
	var e models.Employee
	var avatar sql.NullString
	err := s.db.QueryRow(`
		SELECT id, name, role, email, status, joinedDate, avatarUrl
		FROM employees
		WHERE id = ?
	`, id).Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.Status, &e.JoinedDate, &avatar)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("employee not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	if avatar.Valid {
		e.AvatarURL = avatar.String
	}

	return &e, nil
}

// Create inserts a new employee with a fresh ID
func (s *EmployeeService) Create(e models.Employee) (*models.Employee, error) {
	e.ID = newID()
	if e.Status == "" {
		e.Status = models.EmployeeActive
	}

	var avatar interface{}
	if e.AvatarURL != "" {
		avatar = e.AvatarURL
	}
	_, err := s.db.Exec(`
		INSERT INTO employees (id, name, role, email, status, joinedDate, avatarUrl)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Name, e.Role, e.Email, e.Status, e.JoinedDate, avatar)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return &e, nil
}

// UpdateStatus toggles an employee between Active and Inactive
func (s *EmployeeService) UpdateStatus(id string, status models.EmployeeStatus) error {
	result, err := s.db.Exec(`UPDATE employees SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("employee not found")
	}
	return nil
}

// Delete removes an employee and unassigns them from every task. Tasks
// left with an empty assignee set are kept and render as Unassigned.
// The cascade runs in the same transaction as the delete, so a reader
// that observes the deletion has also observed the unassignment.
func (s *EmployeeService) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM employees WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	now := isoNow(s.clock)
	rows, err := tx.Query(`SELECT id, assignedToId FROM tasks WHERE assignedToId LIKE ?`, "%"+id+"%")
	if err != nil {
		return fmt.Errorf("failed to query assigned tasks: %w", err)
	}

	type patch struct{ taskID, assignees string }
	var patches []patch
	for rows.Next() {
		var taskID, assignees string
		if err := rows.Scan(&taskID, &assignees); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan task assignees: %w", err)
		}
		if updated := refset.Remove(assignees, id); updated != assignees {
			patches = append(patches, patch{taskID, updated})
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate assigned tasks: %w", err)
	}

	for _, p := range patches {
		if _, err := tx.Exec(`UPDATE tasks SET assignedToId = ?, updatedAt = ? WHERE id = ?`, p.assignees, now, p.taskID); err != nil {
			return fmt.Errorf("failed to unassign task %s: %w", p.taskID, err)
		}
	}

	if len(patches) > 0 {
		logging.WithEntity("employee", id).Info("unassigned deleted employee from tasks", "tasks", len(patches))
	}

	return tx.Commit()
}
