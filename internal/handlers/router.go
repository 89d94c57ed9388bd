package handlers

import (
	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/database"
	"scrumcmd/internal/middleware"
	"scrumcmd/internal/services"
)

// Router bundles every handler behind the API surface
type Router struct {
	Employees *EmployeeHandler
	Projects  *ProjectHandler
	Tasks     *TaskHandler
	Updates   *UpdateHandler
	Blockers  *BlockerHandler
	Meetings  *MeetingHandler
	Plans     *PlanHandler
	Dashboard *DashboardHandler
	Reports   *ReportHandler
	Auth      *AuthHandler
	Health    *HealthHandler

	authService *services.AuthService
}

// NewRouter wires services into handlers. authService may be nil in
// development, which disables the login gate.
func NewRouter(db *database.DB, authService *services.AuthService) *Router {
	employees := services.NewEmployeeService(db)
	projects := services.NewProjectService(db)
	tasks := services.NewTaskService(db)
	updates := services.NewUpdateService(db)
	blockers := services.NewBlockerService(db)
	meetings := services.NewMeetingService(db)
	plans := services.NewPlanService(db)

	snapshots := &snapshotLoader{
		employees: employees,
		projects:  projects,
		tasks:     tasks,
		blockers:  blockers,
	}

	var authHandler *AuthHandler
	if authService != nil {
		authHandler = NewAuthHandler(authService)
	}

	return &Router{
		Employees: NewEmployeeHandler(employees, snapshots),
		Projects:  NewProjectHandler(projects, snapshots),
		Tasks:     NewTaskHandler(tasks),
		Updates:   NewUpdateHandler(updates),
		Blockers:  NewBlockerHandler(blockers),
		Meetings:  NewMeetingHandler(meetings, employees, projects),
		Plans:     NewPlanHandler(plans),
		Dashboard: NewDashboardHandler(snapshots),
		Reports:   NewReportHandler(snapshots),
		Auth:      authHandler,
		Health:    NewHealthHandler(db),

		authService: authService,
	}
}

// Register mounts every route on the app
func (r *Router) Register(app *fiber.App) {
	app.Get("/health", r.Health.Handle)

	if r.Auth != nil {
		login := app.Group("/api/auth", middleware.LoginRateLimiter())
		login.Post("/login", r.Auth.Login)
		login.Post("/logout", r.Auth.Logout)
	}

	api := app.Group("/api", middleware.AuthMiddleware(r.authService))

	api.Get("/employees", r.Employees.List)
	api.Post("/employees", r.Employees.Create)
	api.Patch("/employees/:id/status", r.Employees.UpdateStatus)
	api.Delete("/employees/:id", r.Employees.Delete)
	api.Get("/employees/:id/stats", r.Employees.Stats)
	api.Get("/employees/:id/weekly-summary", r.Employees.WeeklySummary)

	api.Get("/projects", r.Projects.List)
	api.Post("/projects", r.Projects.Create)
	api.Patch("/projects/:id/status", r.Projects.UpdateStatus)
	api.Delete("/projects/:id", r.Projects.Delete)
	api.Get("/projects/:id/completion", r.Projects.Completion)

	api.Get("/tasks", r.Tasks.List)
	api.Post("/tasks", r.Tasks.Create)
	api.Put("/tasks/:id", r.Tasks.Update)
	api.Patch("/tasks/:id/status", r.Tasks.UpdateStatus)
	api.Delete("/tasks/:id", r.Tasks.Delete)
	api.Get("/tasks/:id/notes", r.Tasks.ListNotes)
	api.Post("/tasks/:id/notes", r.Tasks.AddNote)

	api.Get("/daily-updates", r.Updates.List)
	api.Post("/daily-updates", r.Updates.Create)

	api.Get("/blockers", r.Blockers.List)
	api.Patch("/blockers/:id/resolve", r.Blockers.Resolve)

	api.Get("/meetings", r.Meetings.List)
	api.Post("/meetings", r.Meetings.Create)
	api.Put("/meetings/:id", r.Meetings.Update)
	api.Delete("/meetings/:id", r.Meetings.Delete)
	api.Get("/meetings/:id/print", r.Meetings.Print)

	api.Get("/project-plans", r.Plans.List)
	api.Post("/project-plans", r.Plans.Create)
	api.Put("/project-plans/:id", r.Plans.Update)
	api.Delete("/project-plans/:id", r.Plans.Delete)
	api.Get("/project-plans/:id/gantt", r.Plans.Gantt)

	api.Get("/dashboard/stats", r.Dashboard.Stats)
	api.Get("/dashboard/overdue", r.Dashboard.Overdue)
	api.Get("/dashboard/recent", r.Dashboard.Recent)

	api.Get("/reports/tasks-per-employee", r.Reports.TasksPerEmployee)
	api.Get("/reports/status-distribution", r.Reports.StatusDistribution)

	api.Get("/export/tasks.csv", r.Reports.TasksCSV)
	api.Get("/export/tasks.xlsx", r.Reports.TasksXLSX)
	api.Get("/export/employees.csv", r.Reports.EmployeesCSV)
}
