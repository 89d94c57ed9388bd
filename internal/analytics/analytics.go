// Package analytics computes the derived dashboard, report, and profile
// views from an in-memory snapshot of the store. Every function is pure:
// the reference date always arrives as an argument, so results are
// reproducible and the package never touches the database or the clock.
package analytics

import (
	"math"
	"sort"
	"time"

	"scrumcmd/internal/models"
	"scrumcmd/internal/refset"
)

const (
	timeLayout = "2006-01-02T15:04:05.000Z"
	dateLayout = "2006-01-02"
)

// Snapshot is the store state a report is computed over
type Snapshot struct {
	Employees []models.Employee
	Projects  []models.Project
	Tasks     []models.Task
	Blockers  []models.Blocker
}

// DashboardStats are the four headline dashboard counters
type DashboardStats struct {
	ActiveProjects int `json:"activeProjects"`
	OpenTasks      int `json:"openTasks"`
	DueToday       int `json:"dueToday"`
	BlockedTasks   int `json:"blockedTasks"`
}

// Stats computes the dashboard counters for a given calendar date.
// Open means any status other than Done; a Done task due today does
// not count as due.
func Stats(snap Snapshot, today string) DashboardStats {
	var s DashboardStats
	for _, p := range snap.Projects {
		if p.Status == models.ProjectActive {
			s.ActiveProjects++
		}
	}
	for _, t := range snap.Tasks {
		if t.Status == models.TaskDone {
			continue
		}
		s.OpenTasks++
		if t.DueDate == today {
			s.DueToday++
		}
		if t.Status == models.TaskBlocked {
			s.BlockedTasks++
		}
	}
	return s
}

// OverdueTasks returns tasks past their due date and not Done, earliest
// due first. Calendar dates are ISO strings so plain string comparison
// orders them.
func OverdueTasks(snap Snapshot, today string) []models.Task {
	var overdue []models.Task
	for _, t := range snap.Tasks {
		if t.DueDate != "" && t.DueDate < today && t.Status != models.TaskDone {
			overdue = append(overdue, t)
		}
	}
	sort.Slice(overdue, func(i, j int) bool { return overdue[i].DueDate < overdue[j].DueDate })
	return overdue
}

// DaysSince returns whole days elapsed since a stored date, flooring
// partial days. Accepts both calendar dates and full timestamps.
func DaysSince(date string, now time.Time) int {
	t, err := time.Parse(timeLayout, date)
	if err != nil {
		t, err = time.Parse(dateLayout, date)
		if err != nil {
			return 0
		}
	}
	d := now.Sub(t).Hours() / 24
	if d < 0 {
		return 0
	}
	return int(d)
}

// EmployeeStats is the per-employee task breakdown on the profile page
type EmployeeStats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Blocked    int `json:"blocked"`
	Overdue    int `json:"overdue"`
}

// StatsForEmployee counts tasks whose assignee set contains the employee
func StatsForEmployee(snap Snapshot, employeeID, today string) EmployeeStats {
	var s EmployeeStats
	for _, t := range snap.Tasks {
		if !refset.Contains(t.AssignedToID, employeeID) {
			continue
		}
		s.Total++
		switch t.Status {
		case models.TaskTodo:
			s.Todo++
		case models.TaskInProgress:
			s.InProgress++
		case models.TaskDone:
			s.Done++
		case models.TaskBlocked:
			s.Blocked++
		}
		if t.DueDate != "" && t.DueDate < today && t.Status != models.TaskDone {
			s.Overdue++
		}
	}
	return s
}

// WeekSummary is one row of the profile's task-history panel
type WeekSummary struct {
	WeekStart string        `json:"weekStart"` // Sunday, YYYY-MM-DD
	WeekEnd   string        `json:"weekEnd"`
	Done      int           `json:"done"`
	Total     int           `json:"total"`
	Tasks     []models.Task `json:"tasks"`
}

// WeeklySummary groups an employee's tasks by the Sunday-aligned week
// they were created in, most recent week first, capped to the last four
// weeks that have any tasks.
func WeeklySummary(snap Snapshot, employeeID string) []WeekSummary {
	weeks := map[string][]models.Task{}
	for _, t := range snap.Tasks {
		if !refset.Contains(t.AssignedToID, employeeID) {
			continue
		}
		created, err := time.Parse(timeLayout, t.CreatedAt)
		if err != nil {
			continue
		}
		start := created.AddDate(0, 0, -int(created.Weekday()))
		key := start.Format(dateLayout)
		weeks[key] = append(weeks[key], t)
	}

	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > 4 {
		keys = keys[:4]
	}

	summary := make([]WeekSummary, 0, len(keys))
	for _, k := range keys {
		start, _ := time.Parse(dateLayout, k)
		tasks := weeks[k]
		done := 0
		for _, t := range tasks {
			if t.Status == models.TaskDone {
				done++
			}
		}
		summary = append(summary, WeekSummary{
			WeekStart: k,
			WeekEnd:   start.AddDate(0, 0, 6).Format(dateLayout),
			Done:      done,
			Total:     len(tasks),
			Tasks:     tasks,
		})
	}
	return summary
}

// ProjectCompletion returns the percentage of a project's tasks that are
// Done, rounded to the nearest integer. A project with no tasks is 0,
// not an error.
func ProjectCompletion(snap Snapshot, projectID string) int {
	total, done := 0, 0
	for _, t := range snap.Tasks {
		if !refset.Contains(t.ProjectID, projectID) {
			continue
		}
		total++
		if t.Status == models.TaskDone {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// EmployeeLoad is one bar of the tasks-per-employee report chart
type EmployeeLoad struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
	Done  int    `json:"done"`
	Open  int    `json:"open"`
}

// TasksPerEmployee computes the report chart series over Active
// employees only, labeled by first name. A task with several assignees
// counts once per assignee.
func TasksPerEmployee(snap Snapshot) []EmployeeLoad {
	loads := make([]EmployeeLoad, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		if e.Status != models.EmployeeActive {
			continue
		}
		load := EmployeeLoad{Name: e.FirstName()}
		for _, t := range snap.Tasks {
			if !refset.Contains(t.AssignedToID, e.ID) {
				continue
			}
			load.Total++
			if t.Status == models.TaskDone {
				load.Done++
			} else {
				load.Open++
			}
		}
		loads = append(loads, load)
	}
	return loads
}

// StatusCount is one slice of the status distribution pie
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StatusDistribution counts tasks per status, in the report's fixed
// display order
func StatusDistribution(snap Snapshot) []StatusCount {
	order := []models.TaskStatus{models.TaskDone, models.TaskInProgress, models.TaskBlocked, models.TaskTodo}
	byStatus := map[models.TaskStatus]int{}
	for _, t := range snap.Tasks {
		byStatus[t.Status]++
	}
	counts := make([]StatusCount, 0, len(order))
	for _, s := range order {
		counts = append(counts, StatusCount{Name: string(s), Value: byStatus[s]})
	}
	return counts
}

// RecentTasks returns the n newest tasks by creation time
func RecentTasks(snap Snapshot, n int) []models.Task {
	tasks := make([]models.Task, len(snap.Tasks))
	copy(tasks, snap.Tasks)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt > tasks[j].CreatedAt })
	if len(tasks) > n {
		tasks = tasks[:n]
	}
	return tasks
}

// PlanProgress is the rounded mean progress across a plan's items,
// shown on the plan card header. An empty plan is 0.
func PlanProgress(items []models.PlanItem) int {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, item := range items {
		sum += item.Progress
	}
	return int(math.Round(float64(sum) / float64(len(items))))
}
