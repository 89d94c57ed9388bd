package services

import (
	"database/sql"
	"fmt"
	"log/slog"

	"scrumcmd/internal/database"
	"scrumcmd/internal/models"
	"scrumcmd/internal/refset"
)

// UpdateService stores daily progress updates and runs the status
// inference cascade they trigger
type UpdateService struct {
	db    *database.DB
	clock Clock
}

// NewUpdateService creates a new daily-update service
func NewUpdateService(db *database.DB) *UpdateService {
	return &UpdateService{db: db, clock: realClock{}}
}

// GetAll returns every daily update, newest first
func (s *UpdateService) GetAll() ([]models.DailyUpdate, error) {
	rows, err := s.db.Query(`
		SELECT id, employeeId, projectId, taskTitle, date, yesterday, today, blockers, progress, createdAt
		FROM daily_updates
		ORDER BY createdAt DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily updates: %w", err)
	}
	defer rows.Close()

	var updates []models.DailyUpdate
	for rows.Next() {
		var u models.DailyUpdate
		var blockers sql.NullString
		if err := rows.Scan(&u.ID, &u.EmployeeID, &u.ProjectID, &u.TaskTitle, &u.Date, &u.Yesterday, &u.Today, &blockers, &u.Progress, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily update: %w", err)
		}
		if blockers.Valid {
			u.Blockers = blockers.String
		}
		updates = append(updates, u)
	}

	return updates, rows.Err()
}

// Create stores a daily update and applies its cascade: a task whose
// title matches case-insensitively under the reported project gets its
// status inferred (blocker text → Blocked, progress 100 → Done,
// otherwise In Progress), and any blocker text opens a new Blocker row.
// An update naming a task that doesn't exist is stored as-is; that is
// informational, not an error.
func (s *UpdateService) Create(u models.DailyUpdate) (*models.DailyUpdate, error) {
	u.ID = newID()
	u.CreatedAt = isoNow(s.clock)

	var blockers interface{}
	if u.Blockers != "" {
		blockers = u.Blockers
	}
	_, err := s.db.Exec(`
		INSERT INTO daily_updates (id, employeeId, projectId, taskTitle, date, yesterday, today, blockers, progress, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.EmployeeID, u.ProjectID, u.TaskTitle, u.Date, u.Yesterday, u.Today, blockers, u.Progress, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily update: %w", err)
	}

	if taskID := s.matchTask(u.ProjectID, u.TaskTitle); taskID != "" {
		status := models.TaskInProgress
		switch {
		case u.Blockers != "":
			status = models.TaskBlocked
		case u.Progress == 100:
			status = models.TaskDone
		}

		if _, err := s.db.Exec(`UPDATE tasks SET status = ?, updatedAt = ? WHERE id = ?`, status, isoNow(s.clock), taskID); err != nil {
			return nil, fmt.Errorf("failed to update task status from daily update: %w", err)
		}
		GetMetrics().recordCascade(string(status))
	} else {
		slog.Info("daily update has no matching task, recorded informationally",
			"taskTitle", u.TaskTitle, "projectId", u.ProjectID)
	}

	if u.Blockers != "" {
		_, err := s.db.Exec(`
			INSERT INTO blockers (id, employeeId, projectId, taskTitle, description, reportedDate, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, newID(), u.EmployeeID, u.ProjectID, u.TaskTitle, u.Blockers, today(s.clock), models.BlockerOpen)
		if err != nil {
			return nil, fmt.Errorf("failed to create blocker from daily update: %w", err)
		}
		GetMetrics().recordBlockerOpened()
	}

	GetMetrics().recordDailyUpdate()
	return &u, nil
}

// matchTask finds a task whose title equals the reported title
// case-insensitively and whose project set contains the reported
// project. Returns "" when nothing matches.
func (s *UpdateService) matchTask(projectID, title string) string {
	rows, err := s.db.Query(`SELECT id, projectId FROM tasks WHERE LOWER(title) = LOWER(?)`, title)
	if err != nil {
		return ""
	}
	defer rows.Close()

	for rows.Next() {
		var id, projects string
		if err := rows.Scan(&id, &projects); err != nil {
			return ""
		}
		if refset.Contains(projects, projectID) {
			return id
		}
	}
	return ""
}
