package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/voteraction/voter-ingest/gen/proto/voters/v1"
	"github.com/voteraction/voter-ingest/internal/boxparser"
	"github.com/voteraction/voter-ingest/internal/common"
	"github.com/voteraction/voter-ingest/internal/export"
	"github.com/voteraction/voter-ingest/internal/importer"
	"github.com/voteraction/voter-ingest/internal/ocr"
	repo "github.com/voteraction/voter-ingest/internal/repository"
	svc "github.com/voteraction/voter-ingest/internal/server"
	"github.com/voteraction/voter-ingest/internal/worker"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded configuration from .env")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	assembliesRepo := repo.NewAssemblyRepository(entc, logger)
	jobsRepo := repo.NewImportJobRepository(entc, logger)
	votersRepo := repo.NewVoterRepository(entc, logger)

	var source worker.RecordSource
	switch cfg.Import.Mode {
	case common.ImportModeBox:
		bridge := boxparser.New(boxparser.Config{
			PythonBin: cfg.Import.PythonBin,
			Script:    cfg.Import.BoxParserScript,
		}, logger)
		source = &worker.BoxSource{Bridge: bridge}
	default:
		extractor := ocr.NewExtractor(ocr.Config{
			Pdftotext:   cfg.OCR.Pdftotext,
			Pdftoppm:    cfg.OCR.Pdftoppm,
			Pdfinfo:     cfg.OCR.Pdfinfo,
			Tesseract:   cfg.OCR.Tesseract,
			Languages:   cfg.OCR.Languages,
			DPI:         cfg.OCR.DPI,
			PSM:         cfg.OCR.PSM,
			MaxOCRPages: cfg.OCR.MaxOCRPages,
			TessdataDir: cfg.OCR.TessdataDir,
			InProcess:   cfg.OCR.InProcess,
		}, logger)
		source = &worker.TextSource{Extractor: extractor}
	}

	imp := importer.New(votersRepo, logger)
	w := worker.New(jobsRepo, imp, source, worker.Config{
		PollInterval: cfg.Import.PollInterval,
		StaleAfter:   cfg.Import.StaleAfter,
	}, logger)
	go w.Run(ctx)

	grpcServer := grpc.NewServer()
	exporter := export.NewService(votersRepo, logger)
	importServer := svc.NewImportServer(assembliesRepo, jobsRepo, exporter,
		func() { go w.ProcessPending(ctx) }, logger)
	v1.RegisterImportServiceServer(grpcServer, importServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("ingestd listening", "addr", cfg.Server.GRPCAddr, "import_mode", cfg.Import.Mode)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
