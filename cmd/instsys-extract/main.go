package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/common"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/export"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/ingest"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/pipeline"
	repo "github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to extract workbooks from (required)")
		out   = flag.String("out", "", "output directory for XLSX exports (optional, defaults to parent directory)")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Dir(*dir)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	// Wire repositories
	studentsRepo := repo.NewStudentRepository(entc, logger)
	personnelRepo := repo.NewPersonnelRepository(entc, logger)
	gradesRepo := repo.NewGradeRepository(entc, logger)
	filesRepo := repo.NewSourceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	processor := pipeline.NewProcessor(logger, filesRepo, jobsRepo, studentsRepo, personnelRepo, gradesRepo)
	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	// Ingest directory
	logger.Info("starting ingestion", "dir", *dir)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			fileID, err := uuid.Parse(result.FileID)
			if err != nil {
				logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
				continue
			}
			ingested = append(ingested, fileID)
		}
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	// Process each ingested workbook
	processed := 0
	persisted := 0
	failures := 0

	for _, fileID := range ingested {
		logger.Info("processing workbook", "file_id", fileID)
		res, err := processor.ProcessFile(ctx, fileID)
		if err != nil {
			logger.Error("failed to process workbook", "file_id", fileID, "error", err)
			failures++
			continue
		}
		processed++
		persisted += res.Persisted()
	}

	// Export to XLSX
	exportService := export.NewService(studentsRepo, personnelRepo, gradesRepo, logger)

	studentsOut := filepath.Join(*out, "students.xlsx")
	logger.Info("exporting students", "output", studentsOut)
	if xlsxBytes, err := exportService.ExportStudentsXLSX(ctx); err != nil {
		logger.Error("failed to export students", "error", err)
		os.Exit(1)
	} else if err := os.WriteFile(studentsOut, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "path", studentsOut, "error", err)
		os.Exit(1)
	}

	personnelOut := filepath.Join(*out, "personnel.xlsx")
	logger.Info("exporting personnel", "output", personnelOut)
	if xlsxBytes, err := exportService.ExportPersonnelXLSX(ctx, ""); err != nil {
		logger.Error("failed to export personnel", "error", err)
		os.Exit(1)
	} else if err := os.WriteFile(personnelOut, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "path", personnelOut, "error", err)
		os.Exit(1)
	}

	logger.Info("batch extraction complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"sheets_persisted", persisted,
		"failures", failures)

	fmt.Printf("Batch extraction complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Sheets persisted: %d\n", persisted)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s, %s\n", studentsOut, personnelOut)
}
