package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	entjob "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/extractjob"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format, sheetName string, status constants.JobStatus) (*ent.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	MarkExtracted(ctx context.Context, jobID uuid.UUID, kind constants.RecordKind, doc json.RawMessage, text string) error
	MarkPersisted(ctx context.Context, jobID uuid.UUID) error
	MarkSkipped(ctx context.Context, jobID uuid.UUID, reason string) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error
	ListRecent(ctx context.Context, limit int) ([]*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format, sheetName string, status constants.JobStatus) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetSheetName(sheetName).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract job started", "job_id", job.ID, "file_id", fileID, "sheet", sheetName)
	return job, nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract job mark(RUNNING) failed", "job_id", jobID, "err", err)
	}
	return err
}

// MarkExtracted records the engine output. Not a terminal state; the
// persist step follows.
func (r *extractJobRepo) MarkExtracted(ctx context.Context, jobID uuid.UUID, kind constants.RecordKind, doc json.RawMessage, text string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetRecordKind(string(kind)).
		SetExtractedJSON(doc).
		SetRecordText(text).
		SetStatus(string(constants.JobStatusExtracted)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract job mark(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract job extracted", "job_id", jobID, "record_kind", kind)
	return nil
}

func (r *extractJobRepo) MarkPersisted(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusPersisted)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract job mark(PERSIST_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract job finished", "job_id", jobID, "status", constants.JobStatusPersisted)
	return nil
}

// MarkSkipped closes a job whose sheet produced no usable record. Routine
// for cover sheets and summary tabs, so it logs at info.
func (r *extractJobRepo) MarkSkipped(ctx context.Context, jobID uuid.UUID, reason string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusSkipped)).
		SetErrorMessage(reason).
		Save(ctx)
	if err != nil {
		r.log.Error("extract job mark(SKIPPED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract job skipped", "job_id", jobID, "reason", reason)
	return nil
}

func (r *extractJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract job mark(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract job failed", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) ListRecent(ctx context.Context, limit int) ([]*ent.ExtractJob, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.ent.ExtractJob.Query().
		Order(entjob.ByStartedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list extract jobs", "err", err)
		return nil, err
	}
	return rows, nil
}
