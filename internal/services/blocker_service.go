package services

import (
	"database/sql"
	"fmt"

	"scrumcmd/internal/database"
	"scrumcmd/internal/models"
)

// BlockerService handles blocker queries and resolution
type BlockerService struct {
	db    *database.DB
	clock Clock
}

// NewBlockerService creates a new blocker service
func NewBlockerService(db *database.DB) *BlockerService {
	return &BlockerService{db: db, clock: realClock{}}
}

// GetAll returns every blocker, newest report first
func (s *BlockerService) GetAll() ([]models.Blocker, error) {
	rows, err := s.db.Query(`
		SELECT id, employeeId, projectId, taskTitle, description, reportedDate, status, resolvedDate
		FROM blockers
		ORDER BY reportedDate DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blockers: %w", err)
	}
	defer rows.Close()

	var blockers []models.Blocker
	for rows.Next() {
		var b models.Blocker
		var resolved sql.NullString
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.ProjectID, &b.TaskTitle, &b.Description, &b.ReportedDate, &b.Status, &resolved); err != nil {
			return nil, fmt.Errorf("failed to scan blocker: %w", err)
		}
		if resolved.Valid {
			b.ResolvedDate = resolved.String
		}
		blockers = append(blockers, b)
	}

	return blockers, rows.Err()
}

// Resolve marks a blocker resolved and stamps the resolution date
func (s *BlockerService) Resolve(id string) error {
	result, err := s.db.Exec(`UPDATE blockers SET status = ?, resolvedDate = ? WHERE id = ?`,
		models.BlockerResolved, today(s.clock), id)
	if err != nil {
		return fmt.Errorf("failed to resolve blocker: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check blocker update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("blocker not found: %s", id)
	}

	GetMetrics().recordBlockerResolved()
	return nil
}
