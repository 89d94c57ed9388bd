package models

// Meeting represents stored meeting minutes. AttendeeIDs is a
// comma-delimited employee ID set; ProjectID is a single optional
// reference. The four free-text sections accept a minimal markdown
// flavor rendered by the export package.
type Meeting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // calendar date, YYYY-MM-DD
	ProjectID   string `json:"projectId"`
	AttendeeIDs string `json:"attendeeIds"`
	Agenda      string `json:"agenda"`
	Notes       string `json:"notes"`
	ActionItems string `json:"actionItems"`
	Decisions   string `json:"decisions"`
	CreatedAt   string `json:"createdAt"`
}
