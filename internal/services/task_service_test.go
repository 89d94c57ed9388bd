package services

import (
	"testing"

	"scrumcmd/internal/models"
)

func TestTaskCreateStampsTimestamps(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTaskService(db)
	svc.clock = testClock()

	created, err := svc.Create(models.Task{
		ProjectID:    "p1,p2",
		AssignedToID: "e1",
		Title:        "Wire export endpoint",
		Priority:     models.PriorityMedium,
		DueDate:      "2026-04-01",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.TaskTodo {
		t.Errorf("expected default status Todo, got %s", created.Status)
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Errorf("createdAt %q != updatedAt %q on create", created.CreatedAt, created.UpdatedAt)
	}
	if created.CreatedAt != "2026-03-14T09:30:00.000Z" {
		t.Errorf("createdAt = %q, want fixed clock stamp", created.CreatedAt)
	}
	if created.ProjectID != "p1,p2" {
		t.Errorf("projectId = %q, multi-reference set must survive as stored", created.ProjectID)
	}
}

func TestTaskUpdateRefreshesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTaskService(db)
	seedTask(t, db, "t1", "p1", "e1", "Old title", models.TaskTodo)

	svc.clock = testClock()
	got, err := svc.Update("t1", models.Task{
		Title: "New title", ProjectID: "p1", AssignedToID: "e1,e2",
		Priority: models.PriorityHigh, DueDate: "2026-04-10", Status: models.TaskInProgress,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Title != "New title" || got.AssignedToID != "e1,e2" {
		t.Errorf("unexpected task after update: %+v", got)
	}
	if got.UpdatedAt != "2026-03-14T09:30:00.000Z" {
		t.Errorf("updatedAt = %q, want refreshed stamp", got.UpdatedAt)
	}
	if got.CreatedAt == got.UpdatedAt {
		t.Error("createdAt must not move on update")
	}

	if _, err := svc.Update("missing", models.Task{}); err == nil {
		t.Error("expected error for unknown task")
	}
}

func TestTaskDeleteRemovesNotes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTaskService(db)
	seedTask(t, db, "t1", "p1", "e1", "Task", models.TaskTodo)

	if _, err := svc.AddNote("t1", "first note"); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if _, err := svc.AddNote("t1", "second note"); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	notes, err := svc.GetNotes("t1")
	if err != nil {
		t.Fatalf("GetNotes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}

	if err := svc.Delete("t1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM task_notes WHERE taskId = 't1'`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected notes deleted with task, got %d", count)
	}
}

func TestTaskUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTaskService(db)
	seedTask(t, db, "t1", "p1", "e1", "Task", models.TaskTodo)

	if err := svc.UpdateStatus("t1", models.TaskBlocked); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if got := taskField(t, db, "t1", "status"); got != string(models.TaskBlocked) {
		t.Errorf("status = %q, want Blocked", got)
	}
}
