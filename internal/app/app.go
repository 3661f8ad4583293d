package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/config"
	v1 "github.com/EasilyAI/QuotationAssistant-sub000/internal/controller/http/v1"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/infrastructure/backend"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/infrastructure/firestore"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/infrastructure/inspect"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/infrastructure/report_generator"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/infrastructure/storage"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/journal"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/poller"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/progress"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/repository/postgresql"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/upload"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/vocabulary"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
	staleRunAge     = 24 * time.Hour
)

type App struct {
	log     *slog.Logger
	cfg     *config.Config
	out     io.Writer
	reports *report_generator.Generator
}

func New(log *slog.Logger, cfg *config.Config, out io.Writer) *App {
	return &App{
		log:     log,
		cfg:     cfg,
		out:     out,
		reports: report_generator.New(),
	}
}

// services holds the collaborators built for one command. close releases them in reverse order.
type services struct {
	fetcher      poller.StatusFetcher
	poller       *poller.Poller
	orchestrator *upload.Orchestrator
	uploads      *postgresql.UploadsRepository
	closers      []func() error
}

func (s *services) close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, s.closers[i]())
	}
	return err
}

func (a *App) setup(ctx context.Context) (_ *services, err error) {
	s := &services{}
	defer func() {
		if err != nil {
			err = errors.Join(err, s.close())
		}
	}()

	client, err := backend.New(a.log, a.cfg.Backend.URL, a.cfg.Backend.Token, backend.WithTimeout(a.cfg.Backend.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	s.fetcher = client
	if a.cfg.Backend.StatusSource == config.StatusSourceFirestore {
		a.log.InfoContext(ctx, "reading statuses from firestore",
			slog.String("project_id", a.cfg.Firestore.ProjectID),
			slog.String("collection", a.cfg.Firestore.Collection),
		)

		fsClient, err := firestore.NewClient(ctx, a.cfg.Firestore.ProjectID, a.cfg.Firestore.CredentialsFile)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, fsClient.Close)
		s.fetcher = firestore.NewStatusFetcher(a.log, fsClient, a.cfg.Firestore.Collection)
	}

	s.poller = poller.New(a.log, s.fetcher,
		poller.WithMaxAttempts(a.cfg.Poll.MaxAttempts),
		poller.WithInterval(a.cfg.Poll.Interval),
	)

	uploader, err := a.uploader(ctx, s)
	if err != nil {
		return nil, err
	}

	opts := []upload.Option{
		upload.WithMaxFileSize(a.cfg.App.MaxFileSize),
		upload.WithInspector(inspect.New(a.log, inspect.WithMaxPDFPages(a.cfg.App.MaxPDFPages))),
	}

	if a.cfg.PostgreSQL.Enabled {
		pool, err := a.connect(ctx)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() error { pool.Close(); return nil })

		s.uploads = postgresql.NewUploadsRepository(pool)
		recorder := journal.NewRecorder(a.log, s.uploads, s.uploads, postgresql.NewTxManager(pool))
		opts = append(opts, upload.WithJournal(recorder))
	}

	s.orchestrator = upload.NewOrchestrator(a.log, client, client, uploader, s.poller, client, opts...)

	return s, nil
}

func (a *App) uploader(ctx context.Context, s *services) (upload.StorageUploader, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageDriverGCS:
		client, err := storage.NewGCSClient(ctx, a.cfg.Storage.CredentialsFile)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)

		return storage.NewGCSUploader(a.log, client, a.cfg.Storage.Bucket), nil

	case config.StorageDriverPresigned, "":
		return storage.NewPresignedUploader(a.log, &http.Client{}), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return pool, nil
}

// Upload runs a single upload and prints its result.
func (a *App) Upload(ctx context.Context, req *domain.UploadRequest) (err error) {
	s, err := a.setup(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	if err := a.markInterrupted(ctx, s); err != nil {
		return err
	}

	result, err := s.orchestrator.Run(ctx, req, a.observer())
	if err != nil {
		a.log.ErrorContext(ctx, "upload failed", slog.String("err", err.Error()))
		return errors.New(domain.UserMessage(err))
	}

	a.writeReport(ctx, req.File.Name, result)

	return a.print(result)
}

// Status polls an already uploaded file until processing ends and prints the final record.
func (a *App) Status(ctx context.Context, fileID string, docType domain.DocumentType) (err error) {
	s, err := a.setup(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	sink := poller.SinkFunc(func(ctx context.Context, status domain.StatusCode, record *domain.FileRecord) {
		attrs := []any{slog.String("file_id", fileID), slog.String("status", string(status))}
		attrs = append(attrs, progressAttrs(progress.Aggregate(docType, record))...)

		a.log.InfoContext(ctx, vocabulary.Describe(docType, status, record.ProcessingStage), attrs...)
	})

	record, err := s.poller.Poll(ctx, fileID, docType, sink)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	return a.print(record)
}

// Serve exposes the upload journal over HTTP until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	server := v1.NewServer(a.cfg.HTTP, postgresql.NewUploadsRepository(pool))

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server", slog.String("addr", server.Addr()))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "server stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "server stopped gracefully")

	return nil
}

func (a *App) markInterrupted(ctx context.Context, s *services) error {
	if s.uploads == nil {
		return nil
	}

	n, err := s.uploads.MarkInterrupted(ctx, time.Now().Add(-staleRunAge))
	if err != nil {
		return fmt.Errorf("failed to mark interrupted uploads: %w", err)
	}

	if n > 0 {
		a.log.InfoContext(ctx, "marked interrupted uploads as failed", slog.Int64("count", n))
	}

	return nil
}

func (a *App) observer() upload.Observer {
	return upload.ObserverFunc(func(ctx context.Context, ev domain.Event) {
		attrs := []any{slog.String("state", string(ev.State))}
		if ev.FileID != "" {
			attrs = append(attrs, slog.String("file_id", ev.FileID))
		}

		switch {
		case ev.State == domain.StateTransferring && ev.UploadPercent > 0:
			a.log.DebugContext(ctx, "uploading", append(attrs, slog.Int("percent", ev.UploadPercent))...)
		case ev.Status != "":
			attrs = append(attrs, slog.String("status", string(ev.Status)))
			a.log.InfoContext(ctx, ev.Description, append(attrs, progressAttrs(ev.Progress)...)...)
		default:
			a.log.InfoContext(ctx, "upload state changed", attrs...)
		}
	})
}

func progressAttrs(p domain.ProgressDetails) []any {
	counters := []struct {
		key   string
		value *int
	}{
		{"pages", p.Pages},
		{"tables", p.Tables},
		{"tables_with_products", p.TablesWithProducts},
		{"products", p.Products},
		{"valid_products", p.ValidProducts},
		{"invalid_products", p.InvalidProducts},
		{"errors", p.Errors},
		{"warnings", p.Warnings},
	}

	var attrs []any
	for _, c := range counters {
		if c.value != nil {
			attrs = append(attrs, slog.Int(c.key, *c.value))
		}
	}

	return attrs
}

func (a *App) writeReport(ctx context.Context, fileName string, result *upload.Result) {
	if a.cfg.App.ReportsDirectory == "" {
		return
	}

	var status domain.StatusCode
	if result.Record != nil {
		status = result.Record.Status
	}

	path := filepath.Join(a.cfg.App.ReportsDirectory, result.FileID+".pdf")

	err := a.reports.GenerateReport(path, &report_generator.Report{
		RunID:           result.RunID,
		FileID:          result.FileID,
		FileName:        fileName,
		Status:          status,
		Summary:         result.Summary,
		Products:        result.Products,
		ResultsDegraded: result.ResultsDegraded,
		GeneratedAt:     time.Now(),
	})
	if err != nil {
		a.log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
		return
	}

	a.log.InfoContext(ctx, "report generated", slog.String("path", path))
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
