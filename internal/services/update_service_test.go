package services

import (
	"testing"

	"scrumcmd/internal/models"
)

func submitUpdate(t *testing.T, svc *UpdateService, u models.DailyUpdate) *models.DailyUpdate {
	t.Helper()
	created, err := svc.Create(u)
	if err != nil {
		t.Fatalf("Create update failed: %v", err)
	}
	return created
}

func TestUpdateInfersInProgress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUpdateService(db)
	seedTask(t, db, "t1", "p1", "e1", "Build API", models.TaskTodo)

	submitUpdate(t, svc, models.DailyUpdate{
		EmployeeID: "e1", ProjectID: "p1", TaskTitle: "Build API",
		Date: "2026-03-14", Yesterday: "design", Today: "endpoints", Progress: 40,
	})

	if got := taskField(t, db, "t1", "status"); got != string(models.TaskInProgress) {
		t.Errorf("status = %q, want In Progress", got)
	}
}

func TestUpdateInfersDoneAtFullProgress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUpdateService(db)
	seedTask(t, db, "t1", "p1", "e1", "Build API", models.TaskInProgress)

	submitUpdate(t, svc, models.DailyUpdate{
		EmployeeID: "e1", ProjectID: "p1", TaskTitle: "Build API",
		Date: "2026-03-14", Yesterday: "endpoints", Today: "cleanup", Progress: 100,
	})

	if got := taskField(t, db, "t1", "status"); got != string(models.TaskDone) {
		t.Errorf("status = %q, want Done", got)
	}
}

func TestUpdateWithBlockersWinsOverProgress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUpdateService(db)
	svc.clock = testClock()
	seedTask(t, db, "t1", "p1", "e1", "Build API", models.TaskInProgress)

	submitUpdate(t, svc, models.DailyUpdate{
		EmployeeID: "e1", ProjectID: "p1", TaskTitle: "Build API",
		Date: "2026-03-14", Yesterday: "endpoints", Today: "waiting",
		Blockers: "waiting on credentials", Progress: 100,
	})

	if got := taskField(t, db, "t1", "status"); got != string(models.TaskBlocked) {
		t.Errorf("status = %q, want Blocked", got)
	}

	blockers, err := NewBlockerService(db).GetAll()
	if err != nil {
		t.Fatalf("GetAll blockers failed: %v", err)
	}
	if len(blockers) != 1 {
		t.Fatalf("expected exactly one blocker, got %d", len(blockers))
	}
	b := blockers[0]
	if b.Status != models.BlockerOpen {
		t.Errorf("blocker status = %s, want Open", b.Status)
	}
	if b.Description != "waiting on credentials" || b.TaskTitle != "Build API" {
		t.Errorf("unexpected blocker: %+v", b)
	}
	if b.ReportedDate != "2026-03-14" {
		t.Errorf("reportedDate = %q, want fixed clock date", b.ReportedDate)
	}
}

func TestUpdateMatchesTitleCaseInsensitively(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUpdateService(db)
	seedTask(t, db, "t1", "p1", "e1", "Build API", models.TaskTodo)

	submitUpdate(t, svc, models.DailyUpdate{
		EmployeeID: "e1", ProjectID: "p1", TaskTitle: "build api",
		Date: "2026-03-14", Yesterday: "x", Today: "y", Progress: 10,
	})

	if got := taskField(t, db, "t1", "status"); got != string(models.TaskInProgress) {
		t.Errorf("status = %q, want In Progress", got)
	}
}

func TestUpdateRequiresProjectMembership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUpdateService(db)
	seedTask(t, db, "t1", "p1,p2", "e1", "Build API", models.TaskTodo)
	seedTask(t, db, "t2", "p3", "e1", "Build API", models.TaskTodo)

	submitUpdate(t, svc, models.DailyUpdate{
		EmployeeID: "e1", ProjectID: "p2", TaskTitle: "Build API",
		Date: "2026-03-14", Yesterday: "x", Today: "y", Progress: 10,
	})

	// only the task whose project set contains p2 is touched
	if got := taskField(t, db, "t1", "status"); got != string(models.TaskInProgress) {
		t.Errorf("t1 status = %q, want In Progress", got)
	}
	if got := taskField(t, db, "t2", "status"); got != string(models.TaskTodo) {
		t.Errorf("t2 status = %q, want untouched Todo", got)
	}
}

func TestUpdateWithoutMatchingTaskIsStored(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUpdateService(db)

	created := submitUpdate(t, svc, models.DailyUpdate{
		EmployeeID: "e1", ProjectID: "p1", TaskTitle: "No such task",
		Date: "2026-03-14", Yesterday: "x", Today: "y", Progress: 50,
	})
	if created.ID == "" {
		t.Error("expected generated ID")
	}

	updates, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected the update to be stored, got %d rows", len(updates))
	}
	if updates[0].TaskTitle != "No such task" {
		t.Errorf("unexpected update: %+v", updates[0])
	}
}

func TestBlockerResolve(t *testing.T) {
	db := setupTestDB(t)
	updates := NewUpdateService(db)
	blockers := NewBlockerService(db)
	blockers.clock = testClock()
	seedTask(t, db, "t1", "p1", "e1", "Build API", models.TaskInProgress)

	submitUpdate(t, updates, models.DailyUpdate{
		EmployeeID: "e1", ProjectID: "p1", TaskTitle: "Build API",
		Date: "2026-03-14", Yesterday: "x", Today: "y",
		Blockers: "flaky CI", Progress: 20,
	})

	all, err := blockers.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one blocker, got %d", len(all))
	}

	if err := blockers.Resolve(all[0].ID); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	all, err = blockers.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if all[0].Status != models.BlockerResolved {
		t.Errorf("status = %s, want Resolved", all[0].Status)
	}
	if all[0].ResolvedDate != "2026-03-14" {
		t.Errorf("resolvedDate = %q, want fixed clock date", all[0].ResolvedDate)
	}

	if err := blockers.Resolve("missing"); err == nil {
		t.Error("expected error for unknown blocker")
	}
}
