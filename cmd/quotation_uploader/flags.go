package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/app"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/config"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/infrastructure/firestore"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/infrastructure/inspect"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/poller"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/upload"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "quotation_uploader",
		Usage:   "Upload quotation documents and track their processing",
		Version: version,
		Flags:   flags(),
		Commands: []*cli.Command{
			uploadCmd(),
			batchCmd(),
			statusCmd(),
			serveCmd(),
		},
	}
}

// newApp builds the app from the flags visible to cmd, including the root ones.
func newApp(ctx context.Context, cmd *cli.Command) (*app.App, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	return app.New(log, config.Load(cmd), os.Stdout), nil
}

func uploadCmd() *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Upload one document and wait until it is processed",
		Flags: []cli.Flag{
			documentTypeFlag(),
			&cli.StringFlag{
				Name:      "file",
				Aliases:   []string{"f"},
				Usage:     "Upload `FILE`",
				Required:  true,
				Validator: validateFile,
			},
			&cli.StringFlag{Name: "supplier", Usage: "Set supplier name"},
			&cli.StringFlag{Name: "year", Usage: "Set price list year"},
			&cli.StringFlag{Name: "ordering-number", Usage: "Set sales drawing ordering number"},
			&cli.StringFlag{Name: "description", Usage: "Set free-text description"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}

			file, err := domain.StatLocalFile(cmd.String("file"))
			if err != nil {
				return err
			}

			return a.Upload(ctx, &domain.UploadRequest{
				DocumentType: domain.DocumentType(cmd.String("type")),
				File:         file,
				Form: domain.FormData{
					Supplier:       cmd.String("supplier"),
					Year:           cmd.String("year"),
					OrderingNumber: cmd.String("ordering-number"),
					Description:    cmd.String("description"),
				},
			})
		},
	}
}

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Upload every document listed in a TSV manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "manifest",
				Aliases:   []string{"m"},
				Usage:     "Read uploads from `FILE`",
				Required:  true,
				Validator: validateFile,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Set how many uploads run at once",
				Value: app.DefaultConcurrency,
				Validator: func(n int) error {
					if n < 1 {
						return fmt.Errorf("concurrency must be positive, got %d", n)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}

			return a.Batch(ctx, cmd.String("manifest"), cmd.Int("concurrency"))
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Wait until an uploaded file is processed",
		Flags: []cli.Flag{
			documentTypeFlag(),
			&cli.StringFlag{
				Name:     "file-id",
				Usage:    "Track file `ID`",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}

			return a.Status(ctx, cmd.String("file-id"), domain.DocumentType(cmd.String("type")))
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the upload journal over HTTP",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}

			return a.Serve(ctx)
		},
	}
}

func documentTypeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "Set document type: catalog, price_list or sales_drawing",
		Required: true,
		Validator: func(s string) error {
			_, err := domain.ParseDocumentType(s)
			return err
		},
	}
}

func flags() []cli.Flag {
	var configFile string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Write a PDF completion report per upload to `DIR`",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.reports_dir", altsrc.NewStringPtrSourcer(&configFile))),
			Validator: validateDirectory,
		},
		&cli.Int64Flag{
			Name:    "max-file-size",
			Usage:   "Set the largest accepted file in bytes",
			Value:   upload.DefaultMaxFileSize,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.max_file_size", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.IntFlag{
			Name:    "max-pdf-pages",
			Usage:   "Set the largest accepted PDF page count",
			Value:   inspect.DefaultMaxPDFPages,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.max_pdf_pages", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "backend-url",
			Usage:   "Set quotation backend base URL",
			Sources: cli.NewValueSourceChain(cli.EnvVar("BACKEND_URL"), yaml.YAML("backend.url", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "backend-token",
			Usage:   "Set quotation backend API token",
			Sources: cli.NewValueSourceChain(cli.EnvVar("BACKEND_TOKEN"), yaml.YAML("backend.token", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.DurationFlag{
			Name:    "backend-timeout",
			Usage:   "Set quotation backend request timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("backend.timeout", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:      "status-source",
			Usage:     "Read processing statuses from backend or firestore",
			Value:     config.StatusSourceBackend,
			Sources:   cli.NewValueSourceChain(yaml.YAML("backend.status_source", altsrc.NewStringPtrSourcer(&configFile))),
			Validator: oneOf(config.StatusSourceBackend, config.StatusSourceFirestore),
		},
		&cli.StringFlag{
			Name:      "storage-driver",
			Usage:     "Upload files via presigned URLs or directly to gcs",
			Value:     config.StorageDriverPresigned,
			Sources:   cli.NewValueSourceChain(yaml.YAML("storage.driver", altsrc.NewStringPtrSourcer(&configFile))),
			Validator: oneOf(config.StorageDriverPresigned, config.StorageDriverGCS),
		},
		&cli.StringFlag{
			Name:    "storage-bucket",
			Usage:   "Set bucket used when the upload target names none",
			Sources: cli.NewValueSourceChain(yaml.YAML("storage.bucket", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "gcp-credentials",
			Usage:   "Read Google Cloud credentials from `FILE`",
			Sources: cli.NewValueSourceChain(cli.EnvVar("GOOGLE_APPLICATION_CREDENTIALS"), yaml.YAML("storage.credentials_file", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.IntFlag{
			Name:    "poll-max-attempts",
			Usage:   "Set how many status checks are made before giving up",
			Value:   poller.DefaultMaxAttempts,
			Sources: cli.NewValueSourceChain(yaml.YAML("poll.max_attempts", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.DurationFlag{
			Name:    "poll-interval",
			Usage:   "Set the pause between status checks",
			Value:   poller.DefaultInterval,
			Sources: cli.NewValueSourceChain(yaml.YAML("poll.interval", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "firestore-project",
			Usage:   "Set Google Cloud project of the status database",
			Sources: cli.NewValueSourceChain(cli.EnvVar("GOOGLE_CLOUD_PROJECT"), yaml.YAML("firestore.project_id", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "firestore-collection",
			Usage:   "Set collection holding file status documents",
			Value:   firestore.DefaultCollection,
			Sources: cli.NewValueSourceChain(yaml.YAML("firestore.collection", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.BoolFlag{
			Name:    "journal",
			Usage:   "Record uploads in PostgreSQL",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.enabled", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_USERNAME"), yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_PASSWORD"), yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "quotation_uploader",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size",
			Value:   4,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.max_conns", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&configFile))),
		},
	}
}

func oneOf(allowed ...string) func(string) error {
	return func(s string) error {
		if !slices.Contains(allowed, s) {
			return fmt.Errorf("%q must be one of %v", s, allowed)
		}
		return nil
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	return nil
}

func validateConfig(path string) error {
	if err := validateFile(path); err != nil {
		return err
	}

	ext := filepath.Ext(path)
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", path)
	}

	return nil
}
