package entity

import (
	"time"

	"github.com/google/uuid"
)

// GradeReport represents one term's grade sheet for a student.
type GradeReport struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	Semester   string    `json:"semester,omitempty"`
	SchoolYear string    `json:"school_year,omitempty"`
	GWA        *float64  `json:"gwa,omitempty"`
	RecordText string    `json:"record_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GradeEntry represents one subject row on a grade report. FinalGrade
// stays a string so non-numeric marks (INC, DRP) survive round trips.
type GradeEntry struct {
	ID         uuid.UUID `json:"id"`
	ReportID   uuid.UUID `json:"report_id"`
	Code       string    `json:"code"`
	Title      string    `json:"title,omitempty"`
	Units      *float64  `json:"units,omitempty"`
	FinalGrade string    `json:"final_grade,omitempty"`
	Remarks    string    `json:"remarks,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
