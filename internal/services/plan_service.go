package services

import (
	"encoding/json"
	"fmt"

	"scrumcmd/internal/database"
	"scrumcmd/internal/models"
)

// PlanService handles project plan timelines. Plan items are stored as
// a JSON document per plan because they are always read and written as
// a whole.
type PlanService struct {
	db    *database.DB
	clock Clock
}

// NewPlanService creates a new project-plan service
func NewPlanService(db *database.DB) *PlanService {
	return &PlanService{db: db, clock: realClock{}}
}

// GetAll returns every project plan, newest first
func (s *PlanService) GetAll() ([]models.ProjectPlan, error) {
	rows, err := s.db.Query(`
		SELECT id, title, projectId, items, createdAt
		FROM project_plans
		ORDER BY createdAt DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query project plans: %w", err)
	}
	defer rows.Close()

	var plans []models.ProjectPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}

	return plans, rows.Err()
}

// GetByID returns a single project plan
func (s *PlanService) GetByID(id string) (*models.ProjectPlan, error) {
	rows, err := s.db.Query(`SELECT id, title, projectId, items, createdAt FROM project_plans WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query project plan: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("project plan not found")
	}
	return scanPlan(rows)
}

// Create stores a new plan. Item statuses are normalized against their
// progress before the write.
func (s *PlanService) Create(p models.ProjectPlan) (*models.ProjectPlan, error) {
	p.ID = newID()
	p.CreatedAt = isoNow(s.clock)
	p.Items = normalizeItems(p.Items)

	items, err := json.Marshal(p.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan items: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO project_plans (id, title, projectId, items, createdAt)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.Title, p.ProjectID, string(items), p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project plan: %w", err)
	}

	return &p, nil
}

// Update replaces a plan's title, project link, and items
func (s *PlanService) Update(id string, p models.ProjectPlan) (*models.ProjectPlan, error) {
	p.Items = normalizeItems(p.Items)

	items, err := json.Marshal(p.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan items: %w", err)
	}

	result, err := s.db.Exec(`
		UPDATE project_plans SET title = ?, projectId = ?, items = ? WHERE id = ?
	`, p.Title, p.ProjectID, string(items), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update project plan: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("project plan not found")
	}

	return s.GetByID(id)
}

// Delete removes a plan
func (s *PlanService) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM project_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project plan: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("project plan not found")
	}
	return nil
}

// normalizeItems keeps each item's status consistent with its progress.
// Blocked is the one status that survives any progress value, so it is
// left alone.
func normalizeItems(items []models.PlanItem) []models.PlanItem {
	out := make([]models.PlanItem, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = newID()
		}
		if item.Status != models.ItemBlocked {
			item.Status = models.DeriveItemStatus(item.Progress)
		}
		item.Progress = models.SnapProgress(item.Status, item.Progress)
		out[i] = item
	}
	return out
}

func scanPlan(rows interface{ Scan(...interface{}) error }) (*models.ProjectPlan, error) {
	var p models.ProjectPlan
	var items string
	if err := rows.Scan(&p.ID, &p.Title, &p.ProjectID, &items, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan project plan: %w", err)
	}
	if err := json.Unmarshal([]byte(items), &p.Items); err != nil {
		return nil, fmt.Errorf("failed to decode plan items: %w", err)
	}
	if p.Items == nil {
		p.Items = []models.PlanItem{}
	}
	return &p, nil
}
