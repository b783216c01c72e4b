package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	instsyspb "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/proto/instsys/v1"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/async"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/common"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/ingest"
)

type IngestionServer struct {
	instsyspb.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

func NewIngestionServer(ing ingest.Ingestor, queue async.Queue, logger *slog.Logger) *IngestionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionServer{
		ingestor: ing,
		queue:    queue,
		logger:   logger,
	}
}

// IngestFile registers one workbook and queues it for extraction.
// Extraction runs asynchronously; poll ListJobs for the outcome.
func (s *IngestionServer) IngestFile(ctx context.Context, req *instsyspb.IngestFileRequest) (*instsyspb.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := &instsyspb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          "",
	}

	s.enqueue(ctx, r.FileID)
	return resp, nil
}

// IngestDirectory registers every matching workbook under root and queues
// each for extraction.
func (s *IngestionServer) IngestDirectory(ctx context.Context, req *instsyspb.IngestDirectoryRequest) (*instsyspb.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	// default skipHidden := true when field not present (optional bool)
	skipHidden := true
	if req.SkipHidden != false {
		skipHidden = req.GetSkipHidden()
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		// DB and file errors are already logged in repository/ingest layers
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &instsyspb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*instsyspb.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := &instsyspb.IngestResponse{
			FileId:         r.FileID,
			Deduplicated:   r.Deduplicated,
			ContentHashHex: r.HashHex,
			FileExt:        r.FileExt,
			UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
			SourcePath:     r.SourcePath,
			Error:          r.Err,
		}
		if r.Err == "" && r.FileID != "" {
			s.enqueue(ctx, r.FileID)
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *IngestionServer) enqueue(ctx context.Context, fileID string) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		s.logger.Error("unparseable file id from ingest", "file_id", fileID, "error", err)
		return
	}
	_ = s.queue.Enqueue(ctx, async.Job{
		FileID:      id,
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	})
}
