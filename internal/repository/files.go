package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	entfile "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/sourcefile"
)

type SourceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.SourceFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, bool, error)
}

type sourceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSourceFileRepository(entc *ent.Client, logger *slog.Logger) SourceFileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sourceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *sourceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error) {
	return r.ent.SourceFile.Get(ctx, id)
}

func (r *sourceFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			r.logger.Error("failed to get source file by hash", "error", err)
		}
		return nil, err
	}
	return row, nil
}

func (r *sourceFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create source file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the content hash is already
// known; the second return reports whether it was a duplicate.
func (r *sourceFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, bool, error) {
	existing, err := r.GetByHash(ctx, hash)
	if err == nil {
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
