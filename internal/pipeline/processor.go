package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/workbook"
)

// Processor drives one workbook through load, per-sheet extraction and
// persistence. Every sheet leaves an extract job row as its audit trail.
type Processor struct {
	logger    *slog.Logger
	files     repository.SourceFileRepository
	jobs      repository.ExtractJobRepository
	students  repository.StudentRepository
	personnel repository.PersonnelRepository
	grades    repository.GradeRepository
}

func NewProcessor(
	logger *slog.Logger,
	files repository.SourceFileRepository,
	jobs repository.ExtractJobRepository,
	students repository.StudentRepository,
	personnel repository.PersonnelRepository,
	grades repository.GradeRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		files:     files,
		jobs:      jobs,
		students:  students,
		personnel: personnel,
		grades:    grades,
	}
}

// SheetOutcome is the terminal state of one sheet's extraction.
type SheetOutcome struct {
	Sheet  string
	JobID  uuid.UUID
	Kind   constants.RecordKind
	Status constants.JobStatus
	Err    string
}

// FileResult aggregates the sheet outcomes for one workbook.
type FileResult struct {
	FileID   uuid.UUID
	Source   string
	Outcomes []SheetOutcome
}

// Persisted counts sheets that made it all the way into the record store.
func (r *FileResult) Persisted() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == constants.JobStatusPersisted {
			n++
		}
	}
	return n
}

// ProcessFile loads the workbook behind an ingested file and runs every
// sheet through the extraction pipeline. Sheet-level problems are recorded
// on their job rows and do not abort the rest of the workbook.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (*FileResult, error) {
	row, err := p.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	result := &FileResult{FileID: row.ID, Source: row.SourcePath}

	sheets, err := workbook.Load(row.SourcePath)
	if err != nil {
		// Leave a trail even when the workbook cannot be opened.
		if job, jerr := p.jobs.Start(ctx, row.ID, row.FileExt, "", constants.JobStatusQueued); jerr == nil {
			_ = p.jobs.MarkFailed(ctx, job.ID, fmt.Sprintf("load workbook: %v", err))
			result.Outcomes = append(result.Outcomes, SheetOutcome{
				JobID:  job.ID,
				Status: constants.JobStatusFailed,
				Err:    err.Error(),
			})
		}
		return result, fmt.Errorf("load workbook %s: %w", row.SourcePath, err)
	}

	p.logger.Info("processing workbook", "file_id", row.ID, "source", row.SourcePath, "sheets", len(sheets))
	for _, sheet := range sheets {
		result.Outcomes = append(result.Outcomes, p.processSheet(ctx, row, sheet))
	}
	p.logger.Info("workbook processed", "file_id", row.ID,
		"sheets", len(result.Outcomes), "persisted", result.Persisted())
	return result, nil
}
