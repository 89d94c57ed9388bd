package database

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile mirrors the YAML layout of a first-run seed file. Only the
// entities a fresh install needs are supported; everything else starts
// empty.
type SeedFile struct {
	Employees []struct {
		ID         string `yaml:"id"`
		Name       string `yaml:"name"`
		Role       string `yaml:"role"`
		Email      string `yaml:"email"`
		Status     string `yaml:"status"`
		JoinedDate string `yaml:"joinedDate"`
		AvatarURL  string `yaml:"avatarUrl"`
	} `yaml:"employees"`
	Projects []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		StartDate   string `yaml:"startDate"`
		Deadline    string `yaml:"deadline"`
		Priority    string `yaml:"priority"`
		OwnerID     string `yaml:"ownerId"`
		Status      string `yaml:"status"`
		Description string `yaml:"description"`
	} `yaml:"projects"`
	Tasks []struct {
		ID           string `yaml:"id"`
		ProjectID    string `yaml:"projectId"`
		AssignedToID string `yaml:"assignedToId"`
		Title        string `yaml:"title"`
		Description  string `yaml:"description"`
		Status       string `yaml:"status"`
		Priority     string `yaml:"priority"`
		DueDate      string `yaml:"dueDate"`
		CreatedAt    string `yaml:"createdAt"`
		UpdatedAt    string `yaml:"updatedAt"`
	} `yaml:"tasks"`
}

// Seed loads the YAML seed file into an empty database. It runs only
// when the employees table has no rows, so an existing install is never
// touched.
func (db *DB) Seed(path string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	log.Println("🌱 Seeding database with initial data...")

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range seed.Employees {
		status := e.Status
		if status == "" {
			status = "Active"
		}
		if _, err := tx.Exec(`INSERT INTO employees (id, name, role, email, status, joinedDate, avatarUrl) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Role, e.Email, status, e.JoinedDate, e.AvatarURL); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", e.ID, err)
		}
	}

	for _, p := range seed.Projects {
		status := p.Status
		if status == "" {
			status = "Active"
		}
		if _, err := tx.Exec(`INSERT INTO projects (id, name, startDate, deadline, priority, ownerId, status, description) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.StartDate, p.Deadline, p.Priority, p.OwnerID, status, p.Description); err != nil {
			return fmt.Errorf("failed to seed project %s: %w", p.ID, err)
		}
	}

	for _, t := range seed.Tasks {
		status := t.Status
		if status == "" {
			status = "Todo"
		}
		if _, err := tx.Exec(`INSERT INTO tasks (id, projectId, assignedToId, title, description, status, priority, dueDate, createdAt, updatedAt) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.ProjectID, t.AssignedToID, t.Title, t.Description, status, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt); err != nil {
			return fmt.Errorf("failed to seed task %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}

	log.Printf("✅ Seed data loaded (%d employees, %d projects, %d tasks)",
		len(seed.Employees), len(seed.Projects), len(seed.Tasks))
	return nil
}
