package models

// ItemStatus represents the state of a single plan item
type ItemStatus string

const (
	ItemNotStarted ItemStatus = "Not Started"
	ItemInProgress ItemStatus = "In Progress"
	ItemDone       ItemStatus = "Done"
	ItemBlocked    ItemStatus = "Blocked"
)

// PlanItem is one row of a project plan. Progress and Status are kept in
// sync through DeriveItemStatus / SnapProgress wherever either changes.
type PlanItem struct {
	ID        string     `json:"id"`
	Phase     string     `json:"phase"`
	Task      string     `json:"task"`
	StartDate string     `json:"startDate"` // calendar date or "" when unscheduled
	EndDate   string     `json:"endDate"`
	Owner     string     `json:"owner"` // single employee ID or ""
	Status    ItemStatus `json:"status"`
	Progress  int        `json:"progress"` // 0-100
}

// ProjectPlan groups plan items under a title, optionally linked to a project.
// Items are persisted as a JSON-serialized ordered list.
type ProjectPlan struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ProjectID string     `json:"projectId"`
	Items     []PlanItem `json:"items"`
	CreatedAt string     `json:"createdAt"`
}

// DeriveItemStatus maps a progress value to an item status: 0 means Not
// Started, 100 means Done, anything in between means In Progress. A
// Blocked status is only ever set explicitly, never derived.
func DeriveItemStatus(progress int) ItemStatus {
	switch {
	case progress <= 0:
		return ItemNotStarted
	case progress >= 100:
		return ItemDone
	default:
		return ItemInProgress
	}
}

// SnapProgress returns the progress value forced by an explicit status
// change: Done snaps to 100, Not Started to 0, everything else keeps the
// current value.
func SnapProgress(status ItemStatus, current int) int {
	switch status {
	case ItemDone:
		return 100
	case ItemNotStarted:
		return 0
	default:
		return current
	}
}
