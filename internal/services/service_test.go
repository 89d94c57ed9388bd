package services

import (
	"path/filepath"
	"testing"
	"time"

	"scrumcmd/internal/database"
	"scrumcmd/internal/models"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test_database.db")
	db, err := database.New(path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Initialize(); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return db
}

func testClock() fixedClock {
	return fixedClock{t: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
}

func seedEmployee(t *testing.T, db *database.DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO employees (id, name, role, email, status, joinedDate)
		VALUES (?, ?, 'Developer', ?, 'Active', '2025-01-01')
	`, id, name, name+"@example.com")
	if err != nil {
		t.Fatalf("Failed to seed employee %s: %v", id, err)
	}
}

func seedProject(t *testing.T, db *database.DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO projects (id, name, startDate, deadline, priority, ownerId, status, description)
		VALUES (?, ?, '2026-01-01', '2026-06-30', 'High', '', 'Active', '')
	`, id, name)
	if err != nil {
		t.Fatalf("Failed to seed project %s: %v", id, err)
	}
}

func seedTask(t *testing.T, db *database.DB, id, projectIDs, assigneeIDs, title string, status models.TaskStatus) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO tasks (id, projectId, assignedToId, title, description, status, priority, dueDate, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, '', ?, 'Medium', '2026-04-01', '2026-03-01T00:00:00.000Z', '2026-03-01T00:00:00.000Z')
	`, id, projectIDs, assigneeIDs, title, status)
	if err != nil {
		t.Fatalf("Failed to seed task %s: %v", id, err)
	}
}

func taskField(t *testing.T, db *database.DB, id, column string) string {
	t.Helper()
	var v string
	if err := db.QueryRow(`SELECT `+column+` FROM tasks WHERE id = ?`, id).Scan(&v); err != nil {
		t.Fatalf("Failed to read tasks.%s for %s: %v", column, id, err)
	}
	return v
}
