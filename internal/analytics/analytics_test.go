package analytics

import (
	"testing"
	"time"

	"scrumcmd/internal/models"
)

const testToday = "2026-03-14"

func sampleSnapshot() Snapshot {
	return Snapshot{
		Employees: []models.Employee{
			{ID: "e1", Name: "Arun Mehta", Status: models.EmployeeActive},
			{ID: "e2", Name: "Beena Rao", Status: models.EmployeeActive},
			{ID: "e3", Name: "Chetan", Status: models.EmployeeInactive},
		},
		Projects: []models.Project{
			{ID: "p1", Name: "Apollo", Status: models.ProjectActive},
			{ID: "p2", Name: "Borealis", Status: models.ProjectOnHold},
		},
		Tasks: []models.Task{
			{ID: "t1", ProjectID: "p1", AssignedToID: "e1", Title: "API", Status: models.TaskDone, DueDate: "2026-03-01", CreatedAt: "2026-03-02T10:00:00.000Z"},
			{ID: "t2", ProjectID: "p1", AssignedToID: "e1,e2", Title: "UI", Status: models.TaskInProgress, DueDate: "2026-03-10", CreatedAt: "2026-03-09T10:00:00.000Z"},
			{ID: "t3", ProjectID: "p1,p2", AssignedToID: "e2", Title: "Infra", Status: models.TaskBlocked, DueDate: testToday, CreatedAt: "2026-03-11T10:00:00.000Z"},
			{ID: "t4", ProjectID: "p2", AssignedToID: "", Title: "Docs", Status: models.TaskTodo, DueDate: "2026-04-01", CreatedAt: "2026-03-12T10:00:00.000Z"},
		},
	}
}

func TestStats(t *testing.T) {
	s := Stats(sampleSnapshot(), testToday)

	if s.ActiveProjects != 1 {
		t.Errorf("activeProjects = %d, want 1", s.ActiveProjects)
	}
	if s.OpenTasks != 3 {
		t.Errorf("openTasks = %d, want 3", s.OpenTasks)
	}
	if s.DueToday != 1 {
		t.Errorf("dueToday = %d, want 1", s.DueToday)
	}
	if s.BlockedTasks != 1 {
		t.Errorf("blockedTasks = %d, want 1", s.BlockedTasks)
	}
}

func TestStatsEmptySnapshot(t *testing.T) {
	if s := Stats(Snapshot{}, testToday); s != (DashboardStats{}) {
		t.Errorf("empty snapshot should give zero stats, got %+v", s)
	}
}

func TestOverdueTasksExcludesDone(t *testing.T) {
	snap := sampleSnapshot()
	overdue := OverdueTasks(snap, testToday)

	// t1 is overdue by date but Done; t3 is due today, not past due
	if len(overdue) != 1 || overdue[0].ID != "t2" {
		t.Fatalf("overdue = %v, want just t2", overdue)
	}
}

func TestOverdueTasksSortedByDueDate(t *testing.T) {
	snap := Snapshot{Tasks: []models.Task{
		{ID: "a", Status: models.TaskTodo, DueDate: "2026-03-10"},
		{ID: "b", Status: models.TaskTodo, DueDate: "2026-03-01"},
		{ID: "c", Status: models.TaskTodo, DueDate: "2026-03-05"},
	}}
	overdue := OverdueTasks(snap, testToday)
	if len(overdue) != 3 || overdue[0].ID != "b" || overdue[2].ID != "a" {
		t.Errorf("unexpected order: %v", overdue)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	if d := DaysSince("2026-03-10", now); d != 4 {
		t.Errorf("calendar date: got %d, want 4", d)
	}
	if d := DaysSince("2026-03-13T18:00:00.000Z", now); d != 0 {
		t.Errorf("partial day floors to 0, got %d", d)
	}
	if d := DaysSince("not a date", now); d != 0 {
		t.Errorf("unparseable date should be 0, got %d", d)
	}
}

func TestStatsForEmployee(t *testing.T) {
	s := StatsForEmployee(sampleSnapshot(), "e2", testToday)

	// e2 appears in t2's multi-assignee set and t3's single set
	if s.Total != 2 {
		t.Errorf("total = %d, want 2", s.Total)
	}
	if s.InProgress != 1 || s.Blocked != 1 {
		t.Errorf("breakdown = %+v", s)
	}
	if s.Overdue != 1 {
		t.Errorf("overdue = %d, want 1 (t2 past due)", s.Overdue)
	}
}

func TestWeeklySummaryGroupsBySunday(t *testing.T) {
	snap := Snapshot{Tasks: []models.Task{
		// 2026-03-09 is a Monday, week of Sunday 2026-03-08
		{ID: "t1", AssignedToID: "e1", Status: models.TaskDone, CreatedAt: "2026-03-09T10:00:00.000Z"},
		{ID: "t2", AssignedToID: "e1", Status: models.TaskTodo, CreatedAt: "2026-03-11T10:00:00.000Z"},
		// previous week, Sunday 2026-03-01
		{ID: "t3", AssignedToID: "e1", Status: models.TaskDone, CreatedAt: "2026-03-03T10:00:00.000Z"},
	}}

	weeks := WeeklySummary(snap, "e1")
	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}
	if weeks[0].WeekStart != "2026-03-08" || weeks[1].WeekStart != "2026-03-01" {
		t.Errorf("weeks out of order: %s, %s", weeks[0].WeekStart, weeks[1].WeekStart)
	}
	if weeks[0].WeekEnd != "2026-03-14" {
		t.Errorf("weekEnd = %s, want 2026-03-14", weeks[0].WeekEnd)
	}
	if weeks[0].Done != 1 || weeks[0].Total != 2 {
		t.Errorf("week 0 = %d/%d, want 1/2", weeks[0].Done, weeks[0].Total)
	}
}

func TestWeeklySummaryCapsAtFourWeeks(t *testing.T) {
	var tasks []models.Task
	for i := 0; i < 6; i++ {
		created := time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC).AddDate(0, 0, 7*i)
		tasks = append(tasks, models.Task{
			ID:           string(rune('a' + i)),
			AssignedToID: "e1",
			Status:       models.TaskTodo,
			CreatedAt:    created.Format("2006-01-02T15:04:05.000Z"),
		})
	}

	weeks := WeeklySummary(Snapshot{Tasks: tasks}, "e1")
	if len(weeks) != 4 {
		t.Fatalf("expected cap at 4 weeks, got %d", len(weeks))
	}
	if weeks[0].WeekStart != "2026-02-08" {
		t.Errorf("newest week = %s, want 2026-02-08", weeks[0].WeekStart)
	}
}

func TestProjectCompletion(t *testing.T) {
	snap := sampleSnapshot()

	// p1 has t1 (Done), t2, t3 via its multi-project set: 1 of 3
	if got := ProjectCompletion(snap, "p1"); got != 33 {
		t.Errorf("p1 completion = %d, want 33", got)
	}
	if got := ProjectCompletion(snap, "p2"); got != 0 {
		t.Errorf("p2 completion = %d, want 0", got)
	}
	if got := ProjectCompletion(snap, "no-tasks"); got != 0 {
		t.Errorf("project with no tasks must be 0, got %d", got)
	}
}

func TestTasksPerEmployee(t *testing.T) {
	loads := TasksPerEmployee(sampleSnapshot())

	// inactive e3 excluded
	if len(loads) != 2 {
		t.Fatalf("expected 2 active employees, got %d", len(loads))
	}
	if loads[0].Name != "Arun" {
		t.Errorf("label = %q, want first name", loads[0].Name)
	}
	if loads[0].Total != 2 || loads[0].Done != 1 || loads[0].Open != 1 {
		t.Errorf("e1 load = %+v", loads[0])
	}
	if loads[1].Total != 2 || loads[1].Open != 2 {
		t.Errorf("e2 load = %+v", loads[1])
	}
}

func TestStatusDistribution(t *testing.T) {
	counts := StatusDistribution(sampleSnapshot())

	want := map[string]int{"Done": 1, "In Progress": 1, "Blocked": 1, "Todo": 1}
	if len(counts) != 4 {
		t.Fatalf("expected 4 statuses, got %d", len(counts))
	}
	if counts[0].Name != "Done" {
		t.Errorf("first slice = %s, want Done", counts[0].Name)
	}
	for _, c := range counts {
		if c.Value != want[c.Name] {
			t.Errorf("%s = %d, want %d", c.Name, c.Value, want[c.Name])
		}
	}
}

func TestRecentTasks(t *testing.T) {
	recent := RecentTasks(sampleSnapshot(), 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(recent))
	}
	if recent[0].ID != "t4" || recent[1].ID != "t3" {
		t.Errorf("unexpected order: %s, %s", recent[0].ID, recent[1].ID)
	}

	all := RecentTasks(sampleSnapshot(), 100)
	if len(all) != 4 {
		t.Errorf("cap above len should return all, got %d", len(all))
	}
}

func TestPlanProgress(t *testing.T) {
	items := []models.PlanItem{{Progress: 100}, {Progress: 50}, {Progress: 0}}
	if got := PlanProgress(items); got != 50 {
		t.Errorf("mean = %d, want 50", got)
	}
	if got := PlanProgress(nil); got != 0 {
		t.Errorf("empty plan = %d, want 0", got)
	}
	if got := PlanProgress([]models.PlanItem{{Progress: 33}, {Progress: 34}}); got != 34 {
		t.Errorf("rounded mean = %d, want 34", got)
	}
}
