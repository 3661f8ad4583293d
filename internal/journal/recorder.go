// Package journal persists the history of upload runs.
package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
)

// Recorder stores the latest entry of a run and a transition row for every save, in one transaction.
type Recorder struct {
	log         *slog.Logger
	uploads     UploadSaver
	transitions TransitionSaver
	transactor  Transactor
}

func NewRecorder(
	log *slog.Logger,
	uploads UploadSaver,
	transitions TransitionSaver,
	transactor Transactor,
) *Recorder {
	return &Recorder{
		log:         log,
		uploads:     uploads,
		transitions: transitions,
		transactor:  transactor,
	}
}

func (r *Recorder) Save(ctx context.Context, entry *domain.UploadEntry) error {
	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := r.uploads.SaveUpload(ctx, entry); err != nil {
			return fmt.Errorf("failed to save upload: %w", err)
		}

		err := r.transitions.AddTransition(ctx, &domain.UploadTransition{
			UploadID:  entry.ID,
			State:     entry.State,
			Status:    entry.Status,
			CreatedAt: entry.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to add transition: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.log.DebugContext(ctx, "journal entry saved",
		slog.String("run_id", entry.ID),
		slog.String("state", string(entry.State)),
	)

	return nil
}
