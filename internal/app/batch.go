package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/manifest"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/upload"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// BatchItem is the outcome of one manifest row.
type BatchItem struct {
	Line   int            `json:"line"`
	File   string         `json:"file"`
	Result *upload.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type BatchReport struct {
	Total  int         `json:"total"`
	Failed int         `json:"failed"`
	Items  []BatchItem `json:"items"`
}

// Batch uploads every row of the manifest, at most concurrency at a time. A failed row does not
// stop the others; the returned error reports how many failed.
func (a *App) Batch(ctx context.Context, manifestPath string, concurrency int) (err error) {
	rows, err := manifest.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	s, err := a.setup(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	if err := a.markInterrupted(ctx, s); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "starting batch",
		slog.String("manifest", manifestPath),
		slog.Int("rows", len(rows)),
		slog.Int("concurrency", concurrency),
	)

	report := a.runBatch(ctx, s.orchestrator, filepath.Dir(manifestPath), rows, concurrency)

	if err := a.print(report); err != nil {
		return err
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", report.Failed, report.Total)
	}

	return nil
}

func (a *App) runBatch(
	ctx context.Context,
	orchestrator *upload.Orchestrator,
	baseDir string,
	rows []*manifest.Row,
	concurrency int,
) *BatchReport {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	items := make([]BatchItem, len(rows))

	var erg errgroup.Group
	erg.SetLimit(concurrency)

	for i, row := range rows {
		erg.Go(func() error {
			item := BatchItem{Line: row.Line, File: row.File}
			log := a.log.With(slog.Int("line", row.Line), slog.String("file", row.File))

			req, err := row.Request(baseDir)
			if err != nil {
				log.ErrorContext(ctx, "invalid manifest row", slog.String("err", err.Error()))
				item.Error = err.Error()
				items[i] = item
				return nil
			}

			result, err := orchestrator.Run(ctx, req, a.observer())
			if err != nil {
				log.ErrorContext(ctx, "upload failed", slog.String("err", err.Error()))
				item.Error = domain.UserMessage(err)
				items[i] = item
				return nil
			}

			a.writeReport(ctx, req.File.Name, result)

			item.Result = result
			items[i] = item
			return nil
		})
	}

	_ = erg.Wait()

	report := &BatchReport{Total: len(items), Items: items}
	for _, item := range items {
		if item.Error != "" {
			report.Failed++
		}
	}

	return report
}
