package services

import (
	"database/sql"
	"fmt"

	"scrumcmd/internal/database"
	"scrumcmd/internal/models"
)

// TaskService handles task and task-note CRUD
type TaskService struct {
	db    *database.DB
	clock Clock
}

// NewTaskService creates a new task service
func NewTaskService(db *database.DB) *TaskService {
	return &TaskService{db: db, clock: realClock{}}
}

const taskColumns = `id, projectId, assignedToId, title, description, status, priority, dueDate, createdAt, updatedAt`

func scanTask(rows interface{ Scan(...interface{}) error }) (models.Task, error) {
	var t models.Task
	err := rows.Scan(&t.ID, &t.ProjectID, &t.AssignedToID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// GetAll returns every task
func (s *TaskService) GetAll() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// GetByID returns a task by ID
func (s *TaskService) GetByID(id string) (*models.Task, error) {
	t, err := scanTask(s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query task: %w", err)
	}
	return &t, nil
}

// Create inserts a new task, stamping createdAt == updatedAt == now
func (s *TaskService) Create(t models.Task) (*models.Task, error) {
	t.ID = newID()
	if t.Status == "" {
		t.Status = models.TaskTodo
	}
	now := isoNow(s.clock)
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.ProjectID, t.AssignedToID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &t, nil
}

// Update replaces every editable field and refreshes updatedAt
func (s *TaskService) Update(id string, t models.Task) (*models.Task, error) {
	now := isoNow(s.clock)
	result, err := s.db.Exec(`
		UPDATE tasks
		SET title = ?, description = ?, assignedToId = ?, projectId = ?, priority = ?, dueDate = ?, status = ?, updatedAt = ?
		WHERE id = ?
	`, t.Title, t.Description, t.AssignedToID, t.ProjectID, t.Priority, t.DueDate, t.Status, now, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("task not found")
	}

	return s.GetByID(id)
}

// UpdateStatus changes only the status, refreshing updatedAt
func (s *TaskService) UpdateStatus(id string, status models.TaskStatus) error {
	result, err := s.db.Exec(`UPDATE tasks SET status = ?, updatedAt = ? WHERE id = ?`, status, isoNow(s.clock), id)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

// Delete removes a task together with its notes
func (s *TaskService) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM task_notes WHERE taskId = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task notes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return tx.Commit()
}

// GetNotes returns a task's notes, newest first
func (s *TaskService) GetNotes(taskID string) ([]models.TaskNote, error) {
	rows, err := s.db.Query(`
		SELECT id, taskId, content, createdAt
		FROM task_notes
		WHERE taskId = ?
		ORDER BY createdAt DESC
	`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task notes: %w", err)
	}
	defer rows.Close()

	var notes []models.TaskNote
	for rows.Next() {
		var n models.TaskNote
		if err := rows.Scan(&n.ID, &n.TaskID, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task note: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// AddNote appends a note to a task. Notes are append-only; there is no
// edit or delete.
func (s *TaskService) AddNote(taskID, content string) (*models.TaskNote, error) {
	n := models.TaskNote{
		ID:        newID(),
		TaskID:    taskID,
		Content:   content,
		CreatedAt: isoNow(s.clock),
	}

	_, err := s.db.Exec(`
		INSERT INTO task_notes (id, taskId, content, createdAt)
		VALUES (?, ?, ?, ?)
	`, n.ID, n.TaskID, n.Content, n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add task note: %w", err)
	}

	return &n, nil
}
