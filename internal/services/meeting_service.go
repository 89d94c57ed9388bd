package services

import (
	"fmt"

	"scrumcmd/internal/database"
	"scrumcmd/internal/models"
)

// MeetingService handles meeting minutes CRUD
type MeetingService struct {
	db    *database.DB
	clock Clock
}

// NewMeetingService creates a new meeting service
func NewMeetingService(db *database.DB) *MeetingService {
	return &MeetingService{db: db, clock: realClock{}}
}

const meetingColumns = `id, title, date, projectId, attendeeIds, agenda, notes, actionItems, decisions, createdAt`

// GetAll returns all meetings, most recent date first
func (s *MeetingService) GetAll() ([]models.Meeting, error) {
	rows, err := s.db.Query(`SELECT ` + meetingColumns + ` FROM meetings ORDER BY date DESC, createdAt DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	var meetings []models.Meeting
	for rows.Next() {
		var m models.Meeting
		if err := rows.Scan(&m.ID, &m.Title, &m.Date, &m.ProjectID, &m.AttendeeIDs, &m.Agenda, &m.Notes, &m.ActionItems, &m.Decisions, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}

	return meetings, rows.Err()
}

// GetByID returns a single meeting
func (s *MeetingService) GetByID(id string) (*models.Meeting, error) {
	var m models.Meeting
	err := s.db.QueryRow(`SELECT `+meetingColumns+` FROM meetings WHERE id = ?`, id).
		Scan(&m.ID, &m.Title, &m.Date, &m.ProjectID, &m.AttendeeIDs, &m.Agenda, &m.Notes, &m.ActionItems, &m.Decisions, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("meeting not found")
	}
	return &m, nil
}

// Create stores new meeting minutes
func (s *MeetingService) Create(m models.Meeting) (*models.Meeting, error) {
	m.ID = newID()
	m.CreatedAt = isoNow(s.clock)

	_, err := s.db.Exec(`
		INSERT INTO meetings (`+meetingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Title, m.Date, m.ProjectID, m.AttendeeIDs, m.Agenda, m.Notes, m.ActionItems, m.Decisions, m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return &m, nil
}

// Update replaces the editable fields of a meeting
func (s *MeetingService) Update(id string, m models.Meeting) (*models.Meeting, error) {
	result, err := s.db.Exec(`
		UPDATE meetings
		SET title = ?, date = ?, projectId = ?, attendeeIds = ?, agenda = ?, notes = ?, actionItems = ?, decisions = ?
		WHERE id = ?
	`, m.Title, m.Date, m.ProjectID, m.AttendeeIDs, m.Agenda, m.Notes, m.ActionItems, m.Decisions, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("meeting not found")
	}

	return s.GetByID(id)
}

// Delete removes a meeting
func (s *MeetingService) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("meeting not found")
	}
	return nil
}
