package entity

import (
	"time"

	"github.com/google/uuid"
)

// Personnel represents a staff member for data transfer between layers.
// Variant holds the profile family the row came from, TEACHING or
// NON_TEACHING.
type Personnel struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Variant      string    `json:"variant"`
	Position     string    `json:"position,omitempty"`
	Department   string    `json:"department,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	SSSNo        string    `json:"sss_no,omitempty"`
	PhilHealthNo string    `json:"philhealth_no,omitempty"`
	Birthdate    string    `json:"birthdate,omitempty"`
	Address      string    `json:"address,omitempty"`
	Employment   string    `json:"employment,omitempty"`
	RecordText   string    `json:"record_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoadEntry represents one timetable slot on a faculty schedule.
type LoadEntry struct {
	ID          uuid.UUID `json:"id"`
	PersonnelID uuid.UUID `json:"personnel_id"`
	Day         string    `json:"day"`
	TimeStart   string    `json:"time_start"`
	TimeEnd     string    `json:"time_end,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Section     string    `json:"section,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
