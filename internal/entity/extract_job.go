package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents an extraction attempt for data transfer between layers.
type ExtractJob struct {
	ID            uuid.UUID       `json:"id"`
	FileID        uuid.UUID       `json:"file_id"`
	Format        string          `json:"format"`
	SheetName     *string         `json:"sheet_name,omitempty"`
	RecordKind    *string         `json:"record_kind,omitempty"`
	Status        *string         `json:"status,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	RecordText    *string         `json:"record_text,omitempty"`
}
