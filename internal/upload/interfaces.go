package upload

import (
	"context"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/poller"
)

type ExistenceChecker interface {
	CheckExists(ctx context.Context, form domain.FormData, docType domain.DocumentType) (*domain.ExistsResult, error)
}

type TargetIssuer interface {
	AcquireTarget(ctx context.Context, req *domain.UploadRequest) (*domain.UploadTarget, error)
}

type StorageUploader interface {
	Upload(ctx context.Context, file domain.LocalFile, target *domain.UploadTarget, onProgress func(percent int)) error
}

type StatusPoller interface {
	Poll(ctx context.Context, fileID string, docType domain.DocumentType, sink poller.Sink) (*domain.FileRecord, error)
}

type ProductsFetcher interface {
	FetchProducts(ctx context.Context, fileID string, docType domain.DocumentType) (*domain.ProductsPage, error)
}

type Inspector interface {
	Inspect(ctx context.Context, docType domain.DocumentType, file domain.LocalFile) error
}

type Journal interface {
	Save(ctx context.Context, entry *domain.UploadEntry) error
}

// Observer receives orchestration events in order on the goroutine that called Run.
type Observer interface {
	OnEvent(ctx context.Context, event domain.Event)
}

type ObserverFunc func(ctx context.Context, event domain.Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event domain.Event) {
	f(ctx, event)
}

var discardObserver = ObserverFunc(func(context.Context, domain.Event) {})

type noopJournal struct{}

func (noopJournal) Save(context.Context, *domain.UploadEntry) error { return nil }

type noopInspector struct{}

func (noopInspector) Inspect(context.Context, domain.DocumentType, domain.LocalFile) error { return nil }
