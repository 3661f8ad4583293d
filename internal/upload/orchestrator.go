package upload

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/poller"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/progress"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/summary"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/vocabulary"
	"github.com/google/uuid"
)

// Result is the outcome of a completed orchestration.
type Result struct {
	RunID           string                   `json:"runId"`
	FileID          string                   `json:"fileId"`
	StorageKey      string                   `json:"storageKey"`
	DocumentType    domain.DocumentType      `json:"documentType"`
	State           domain.UploadState       `json:"state"`
	Record          *domain.FileRecord       `json:"record"`
	Progress        domain.ProgressDetails   `json:"progress"`
	Summary         domain.CompletionSummary `json:"summary"`
	Products        []domain.Product         `json:"products"`
	ResultsDegraded bool                     `json:"resultsDegraded,omitempty"`
}

type Orchestrator struct {
	log         *slog.Logger
	checker     ExistenceChecker
	issuer      TargetIssuer
	uploader    StorageUploader
	poller      StatusPoller
	products    ProductsFetcher
	inspector   Inspector
	journal     Journal
	maxFileSize int64
}

type Option func(*Orchestrator)

func WithInspector(inspector Inspector) Option {
	return func(o *Orchestrator) {
		if inspector != nil {
			o.inspector = inspector
		}
	}
}

func WithJournal(journal Journal) Option {
	return func(o *Orchestrator) {
		if journal != nil {
			o.journal = journal
		}
	}
}

func WithMaxFileSize(n int64) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxFileSize = n
		}
	}
}

func NewOrchestrator(
	log *slog.Logger,
	checker ExistenceChecker,
	issuer TargetIssuer,
	uploader StorageUploader,
	statusPoller StatusPoller,
	products ProductsFetcher,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		log:         log,
		checker:     checker,
		issuer:      issuer,
		uploader:    uploader,
		poller:      statusPoller,
		products:    products,
		inspector:   noopInspector{},
		journal:     noopJournal{},
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// run is the state of one Run call.
type run struct {
	*Orchestrator
	log      *slog.Logger
	req      *domain.UploadRequest
	observer Observer
	entry    domain.UploadEntry
	fileID   string

	// journaled is false until the local checks pass; rejected input is never journaled.
	journaled bool
}

// Run drives one upload from validation to completion, emitting an event for every state change,
// upload progress tick and observed processing status.
//
// Errors of the validation, existence check, transfer and polling stages are returned as produced
// by the collaborator. A failure to list the results is logged and reported through
// Result.ResultsDegraded instead.
func (o *Orchestrator) Run(ctx context.Context, req *domain.UploadRequest, observer Observer) (*Result, error) {
	if req == nil {
		return nil, &domain.ValidationError{Message: "empty upload request"}
	}

	if observer == nil {
		observer = discardObserver
	}

	r := o.newRun(req, observer)

	result, err := r.execute(ctx)
	if err != nil {
		r.fail(ctx, err)
		return nil, err
	}

	return result, nil
}

func (o *Orchestrator) newRun(req *domain.UploadRequest, observer Observer) *run {
	fileName := req.File.Name
	if fileName == "" {
		fileName = filepath.Base(req.File.Path)
	}

	now := time.Now()
	id := uuid.NewString()

	return &run{
		Orchestrator: o,
		log: o.log.With(
			slog.String("run_id", id),
			slog.String("document_type", string(req.DocumentType)),
			slog.String("file_name", fileName),
		),
		req:      req,
		observer: observer,
		entry: domain.UploadEntry{
			ID:           id,
			DocumentType: req.DocumentType,
			FileName:     fileName,
			State:        domain.StateIdle,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func (r *run) execute(ctx context.Context) (*Result, error) {
	if err := r.validate(ctx); err != nil {
		return nil, err
	}

	if err := r.checkExists(ctx); err != nil {
		return nil, err
	}

	target, err := r.transfer(ctx)
	if err != nil {
		return nil, err
	}

	r.transition(ctx, domain.StatePolling)

	record, err := r.poller.Poll(ctx, r.fileID, r.req.DocumentType, poller.SinkFunc(r.observe))
	if err != nil {
		return nil, err
	}

	r.log.InfoContext(ctx, "processing finished", slog.String("status", string(record.Status)))

	r.transition(ctx, domain.StateFetchingResults)

	products, degraded := r.fetchResults(ctx)

	return r.complete(ctx, target, record, products, degraded), nil
}

func (r *run) validate(ctx context.Context) error {
	r.transition(ctx, domain.StateValidating)

	if err := Validate(r.req, r.maxFileSize); err != nil {
		return err
	}

	if err := r.inspector.Inspect(ctx, r.req.DocumentType, r.req.File); err != nil {
		return err
	}

	r.journaled = true

	return nil
}

func (r *run) checkExists(ctx context.Context) error {
	r.transition(ctx, domain.StateExistenceChecking)

	res, err := r.checker.CheckExists(ctx, r.req.Form, r.req.DocumentType)
	if err != nil {
		return err
	}

	switch {
	case res == nil:
		return nil
	case res.Error != "":
		return &domain.ValidationError{Field: "form", Message: res.Error}
	case res.Exists:
		return &domain.ExistsConflictError{DocumentType: r.req.DocumentType, Existing: res.File}
	}

	return nil
}

func (r *run) transfer(ctx context.Context) (*domain.UploadTarget, error) {
	r.transition(ctx, domain.StateTransferring)

	target, err := r.issuer.AcquireTarget(ctx, r.req)
	if err != nil {
		return nil, err
	}

	r.fileID = target.FileID
	r.log = r.log.With(slog.String("file_id", target.FileID))
	r.entry.FileID = &target.FileID
	r.entry.StorageKey = &target.StorageKey
	r.save(ctx)

	r.log.DebugContext(ctx, "upload target acquired", slog.String("storage_key", target.StorageKey))

	last := -1
	onProgress := func(percent int) {
		percent = min(max(percent, 0), 100)
		if percent <= last {
			return
		}
		last = percent

		r.emit(ctx, domain.Event{
			State:         domain.StateTransferring,
			FileID:        r.fileID,
			UploadPercent: percent,
		})
	}

	if err := r.uploader.Upload(ctx, r.req.File, target, onProgress); err != nil {
		return nil, err
	}

	onProgress(100)

	r.log.InfoContext(ctx, "file uploaded")

	return target, nil
}

func (r *run) observe(ctx context.Context, status domain.StatusCode, record *domain.FileRecord) {
	docType := r.req.DocumentType

	if r.entry.Status == nil || *r.entry.Status != string(status) {
		s := string(status)
		r.entry.Status = &s
		r.save(ctx)
	}

	r.emit(ctx, domain.Event{
		State:       domain.StatePolling,
		FileID:      r.fileID,
		Status:      status,
		Description: vocabulary.Describe(docType, status, record.ProcessingStage),
		Progress:    progress.Aggregate(docType, record),
		Record:      record,
	})
}

func (r *run) fetchResults(ctx context.Context) ([]domain.Product, bool) {
	if !r.req.DocumentType.HasProducts() {
		return []domain.Product{}, false
	}

	page, err := r.products.FetchProducts(ctx, r.fileID, r.req.DocumentType)
	if err != nil {
		fetchErr := &domain.ResultsFetchError{FileID: r.fileID, Err: err}
		r.log.WarnContext(ctx, "completing without results", slog.String("err", fetchErr.Error()))
		return []domain.Product{}, true
	}

	if page == nil || page.Products == nil {
		return []domain.Product{}, false
	}

	return page.Products, false
}

func (r *run) complete(
	ctx context.Context,
	target *domain.UploadTarget,
	record *domain.FileRecord,
	products []domain.Product,
	degraded bool,
) *Result {
	docType := r.req.DocumentType
	details := progress.Aggregate(docType, record)

	sum := summary.Build(docType, record, details)
	if sd := sum.SalesDrawing; sd != nil {
		if sd.FileName == "" {
			sd.FileName = r.entry.FileName
		}
		if sd.OrderingNumber == "" {
			sd.OrderingNumber = r.req.Form.OrderingNumber
		}
	}

	status := string(record.Status)
	r.entry.Status = &status

	if raw, err := json.Marshal(sum); err == nil {
		r.entry.Summary = raw
	}

	r.transition(ctx, domain.StateComplete, func(e *domain.Event) {
		e.Status = record.Status
		e.Description = vocabulary.Describe(docType, record.Status, record.ProcessingStage)
		e.Progress = details
		e.Record = record
	})

	return &Result{
		RunID:           r.entry.ID,
		FileID:          r.fileID,
		StorageKey:      target.StorageKey,
		DocumentType:    docType,
		State:           domain.StateComplete,
		Record:          record,
		Progress:        details,
		Summary:         sum,
		Products:        products,
		ResultsDegraded: degraded,
	}
}

func (r *run) fail(ctx context.Context, err error) {
	state := domain.StateFailed
	if errors.Is(err, domain.ErrPollCancelled) || errors.Is(err, context.Canceled) {
		state = domain.StateCancelled
	}

	message := domain.UserMessage(err)
	r.entry.ErrorMessage = &message

	log := r.log.With(
		slog.String("state", string(r.entry.State)),
		slog.String("err", err.Error()),
	)
	if state == domain.StateCancelled {
		log.InfoContext(ctx, "upload cancelled")
	} else {
		log.ErrorContext(ctx, "upload failed")
	}

	r.transition(context.WithoutCancel(ctx), state, func(e *domain.Event) {
		e.Description = message
	})
}

func (r *run) transition(ctx context.Context, state domain.UploadState, decorate ...func(*domain.Event)) {
	r.entry.State = state
	r.save(ctx)

	r.log.DebugContext(ctx, "state changed", slog.String("state", string(state)))

	e := domain.Event{State: state, FileID: r.fileID}
	for _, d := range decorate {
		d(&e)
	}

	r.emit(ctx, e)
}

func (r *run) emit(ctx context.Context, e domain.Event) {
	r.observer.OnEvent(ctx, e)
}

// save writes a copy of the journal entry. A journal failure never fails the upload.
func (r *run) save(ctx context.Context) {
	r.entry.UpdatedAt = time.Now()
	if !r.journaled {
		return
	}

	entry := r.entry

	if err := r.journal.Save(context.WithoutCancel(ctx), &entry); err != nil {
		r.log.WarnContext(ctx, "failed to save journal entry", slog.String("err", err.Error()))
	}
}
