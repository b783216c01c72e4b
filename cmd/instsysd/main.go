package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/proto/instsys/v1"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/async"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/common"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/export"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/ingest"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/pipeline"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/query"
	repo "github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
	svc "github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "db_url", cfg.Database.DSN)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	studentsRepo := repo.NewStudentRepository(entc, logger)
	personnelRepo := repo.NewPersonnelRepository(entc, logger)
	gradesRepo := repo.NewGradeRepository(entc, logger)
	filesRepo := repo.NewSourceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	processor := pipeline.NewProcessor(logger, filesRepo, jobsRepo, studentsRepo, personnelRepo, gradesRepo)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	recordsServer := svc.NewRecordsServer(studentsRepo, personnelRepo, gradesRepo, jobsRepo, logger)
	v1.RegisterRecordsServiceServer(grpcServer, recordsServer)

	ingestionServer := svc.NewIngestionServer(ingestor, queue, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionServer)

	exportService := export.NewService(studentsRepo, personnelRepo, gradesRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	router := query.NewRouter(studentsRepo, personnelRepo, gradesRepo, logger)
	v1.RegisterAskServiceServer(grpcServer, svc.NewAskServer(router, logger))

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Watch drop directories and feed the queue.
	if len(cfg.Ingest.WatchDirs) > 0 {
		events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchDirs,
			InitialScan: cfg.Ingest.InitialScan,
			Debounce:    cfg.Ingest.Debounce,
		}, logger)
		if err != nil {
			logger.Error("failed to start watcher", "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-events:
					if !ok {
						return
					}
					res, err := ingestor.IngestPath(ctx, path)
					if err != nil {
						logger.Error("watch ingest failed", "path", path, "error", err)
						continue
					}
					if id, perr := uuid.Parse(res.FileID); perr == nil {
						_ = queue.Enqueue(ctx, async.Job{FileID: id, SubmittedAt: time.Now()})
					}
				case werr, ok := <-watchErrs:
					if !ok {
						return
					}
					logger.Warn("watcher error", "error", werr)
				}
			}
		}()
		logger.Info("watching directories", "roots", strings.Join(cfg.Ingest.WatchDirs, ","))
	}

	logger.Info("instsysd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
