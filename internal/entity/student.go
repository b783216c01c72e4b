package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a student for data transfer between layers.
type Student struct {
	ID         uuid.UUID `json:"id"`
	StudentNo  string    `json:"student_no,omitempty"`
	Name       string    `json:"name"`
	Program    string    `json:"program,omitempty"`
	YearLevel  string    `json:"year_level,omitempty"`
	Section    string    `json:"section,omitempty"`
	Semester   string    `json:"semester,omitempty"`
	SchoolYear string    `json:"school_year,omitempty"`
	Adviser    string    `json:"adviser,omitempty"`
	RecordText string    `json:"record_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SubjectEntry represents one enrolled-subject row on a registration sheet.
type SubjectEntry struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Code      string    `json:"code"`
	Title     string    `json:"title,omitempty"`
	Units     *float64  `json:"units,omitempty"`
	Room      string    `json:"room,omitempty"`
	Day       string    `json:"day,omitempty"`
	TimeStart string    `json:"time_start,omitempty"`
	TimeEnd   string    `json:"time_end,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
