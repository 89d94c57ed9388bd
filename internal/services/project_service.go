package services

import (
	"database/sql"
	"fmt"

	"scrumcmd/internal/database"
	"scrumcmd/internal/logging"
	"scrumcmd/internal/models"
	"scrumcmd/internal/refset"
)

// ProjectService handles project CRUD and the unlink cascade
type ProjectService struct {
	db    *database.DB
	clock Clock
}

// NewProjectService creates a new project service
func NewProjectService(db *database.DB) *ProjectService {
	return &ProjectService{db: db, clock: realClock{}}
}

// GetAll returns every project
func (s *ProjectService) GetAll() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, name, startDate, deadline, priority, ownerId, status, description
		FROM projects
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.Deadline, &p.Priority, &p.OwnerID, &p.Status, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// GetByID returns a project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var p models.Project
	err := s.db.QueryRow(`
		SELECT id, name, startDate, deadline, priority, ownerId, status, description
		FROM projects
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.StartDate, &p.Deadline, &p.Priority, &p.OwnerID, &p.Status, &p.Description)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	return &p, nil
}

// Create inserts a new project with a fresh ID
func (s *ProjectService) Create(p models.Project) (*models.Project, error) {
	p.ID = newID()
	if p.Status == "" {
		p.Status = models.ProjectActive
	}

	_, err := s.db.Exec(`
		INSERT INTO projects (id, name, startDate, deadline, priority, ownerId, status, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.StartDate, p.Deadline, p.Priority, p.OwnerID, p.Status, p.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &p, nil
}

// UpdateStatus changes a project's lifecycle status
func (s *ProjectService) UpdateStatus(id string, status models.ProjectStatus) error {
	result, err := s.db.Exec(`UPDATE projects SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("project not found")
	}
	return nil
}

// Delete removes a project and drops it from every task's project set.
// Tasks are never deleted here, only unlinked; a task whose last project
// is removed keeps its row and shows up as unassigned-project in
// listings.
func (s *ProjectService) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	now := isoNow(s.clock)
	rows, err := tx.Query(`SELECT id, projectId FROM tasks WHERE projectId LIKE ?`, "%"+id+"%")
	if err != nil {
		return fmt.Errorf("failed to query linked tasks: %w", err)
	}

	type patch struct{ taskID, projects string }
	var patches []patch
	for rows.Next() {
		var taskID, projects string
		if err := rows.Scan(&taskID, &projects); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan task projects: %w", err)
		}
		if updated := refset.Remove(projects, id); updated != projects {
			patches = append(patches, patch{taskID, updated})
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate linked tasks: %w", err)
	}

	for _, p := range patches {
		if _, err := tx.Exec(`UPDATE tasks SET projectId = ?, updatedAt = ? WHERE id = ?`, p.projects, now, p.taskID); err != nil {
			return fmt.Errorf("failed to unlink task %s: %w", p.taskID, err)
		}
	}

	if len(patches) > 0 {
		logging.WithEntity("project", id).Info("unlinked deleted project from tasks", "tasks", len(patches))
	}

	return tx.Commit()
}
