package journal

import (
	"context"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
)

type UploadSaver interface {
	SaveUpload(ctx context.Context, entry *domain.UploadEntry) error
}

type TransitionSaver interface {
	AddTransition(ctx context.Context, transition *domain.UploadTransition) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
