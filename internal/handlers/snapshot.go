package handlers

import (
	"fmt"

	"scrumcmd/internal/analytics"
	"scrumcmd/internal/services"
)

// snapshotLoader materializes the store into the in-memory view the
// aggregation and export code works over
type snapshotLoader struct {
	employees *services.EmployeeService
	projects  *services.ProjectService
	tasks     *services.TaskService
	blockers  *services.BlockerService
}

func (l *snapshotLoader) load() (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	var err error

	if snap.Employees, err = l.employees.GetAll(); err != nil {
		return snap, fmt.Errorf("failed to load employees: %w", err)
	}
	if snap.Projects, err = l.projects.GetAll(); err != nil {
		return snap, fmt.Errorf("failed to load projects: %w", err)
	}
	if snap.Tasks, err = l.tasks.GetAll(); err != nil {
		return snap, fmt.Errorf("failed to load tasks: %w", err)
	}
	if snap.Blockers, err = l.blockers.GetAll(); err != nil {
		return snap, fmt.Errorf("failed to load blockers: %w", err)
	}

	return snap, nil
}
