package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/vocabulary"
)

const (
	DefaultMaxAttempts = 60
	DefaultInterval    = 2 * time.Second
)

type StatusFetcher interface {
	FetchStatus(ctx context.Context, fileID string) (*domain.FileRecord, error)
}

type Poller struct {
	log         *slog.Logger
	fetcher     StatusFetcher
	maxAttempts int
	interval    time.Duration
}

type Option func(*Poller)

func WithMaxAttempts(n int) Option {
	return func(p *Poller) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d >= 0 {
			p.interval = d
		}
	}
}

func New(log *slog.Logger, fetcher StatusFetcher, opts ...Option) *Poller {
	p := &Poller{
		log:         log,
		fetcher:     fetcher,
		maxAttempts: DefaultMaxAttempts,
		interval:    DefaultInterval,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// session is the state of one Poll call. It never outlives the call.
type session struct {
	fileID       string
	docType      domain.DocumentType
	attempts     int
	maxAttempts  int
	lastObserved domain.StatusCode
	lastErr      error
	startedAt    time.Time
}

func (s *session) exhausted() bool {
	return s.attempts >= s.maxAttempts
}

func (s *session) timeout() *domain.TimeoutError {
	return &domain.TimeoutError{
		FileID:     s.fileID,
		Attempts:   s.attempts,
		Elapsed:    time.Since(s.startedAt),
		LastStatus: s.lastObserved,
		Err:        s.lastErr,
	}
}

// Poll fetches the status of fileID until it reaches a terminal classification or the attempts run out.
//
// Every fetched non-terminal status is written to sink before the next cycle. A terminal failure is
// returned as *domain.ProcessingFailedError right away; running out of attempts, whether on transport
// errors or transient statuses, yields *domain.TimeoutError. When ctx is done the loop stops with
// domain.ErrPollCancelled. The fetch itself is not cancelled: a request already in flight is allowed
// to finish before the loop notices.
func (p *Poller) Poll(
	ctx context.Context,
	fileID string,
	docType domain.DocumentType,
	sink Sink,
) (*domain.FileRecord, error) {
	if sink == nil {
		sink = Discard
	}

	s := &session{
		fileID:      fileID,
		docType:     docType,
		maxAttempts: p.maxAttempts,
		startedAt:   time.Now(),
	}

	log := p.log.With(
		slog.String("file_id", fileID),
		slog.String("document_type", string(docType)),
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, cancelled(err)
		}

		record, err := p.fetcher.FetchStatus(context.WithoutCancel(ctx), fileID)
		s.attempts++

		if err != nil {
			s.lastErr = &domain.NetworkError{FileID: fileID, Err: err}

			log.DebugContext(ctx, "status fetch failed",
				slog.Int("attempt", s.attempts),
				slog.Int("max_attempts", s.maxAttempts),
				slog.String("err", err.Error()),
			)

			if s.exhausted() {
				return nil, s.timeout()
			}

			if err := p.wait(ctx); err != nil {
				return nil, err
			}
			continue
		}

		s.lastErr = nil
		s.lastObserved = record.Status

		classType := docType
		if record.DocumentType != "" {
			classType = record.DocumentType
		}

		class := vocabulary.Classify(classType, record.Status)

		log.DebugContext(ctx, "status fetched",
			slog.Int("attempt", s.attempts),
			slog.String("status", string(record.Status)),
			slog.String("class", class.String()),
		)

		switch class {
		case domain.ClassTerminalFailure:
			return nil, &domain.ProcessingFailedError{
				FileID:  fileID,
				Status:  record.Status,
				Message: failureMessage(record),
			}

		case domain.ClassTerminalSuccess:
			return record, nil
		}

		sink.Observe(ctx, record.Status, record)

		if s.exhausted() {
			return nil, s.timeout()
		}

		if err := p.wait(ctx); err != nil {
			return nil, err
		}
	}
}

func (p *Poller) wait(ctx context.Context) error {
	if p.interval <= 0 {
		return nil
	}

	t := time.NewTimer(p.interval)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return cancelled(ctx.Err())
	}
}

func cancelled(cause error) error {
	return fmt.Errorf("%w: %w", domain.ErrPollCancelled, cause)
}

func failureMessage(record *domain.FileRecord) string {
	switch {
	case record.Error != "":
		return record.Error
	case record.ProcessingStage != "":
		return record.ProcessingStage
	default:
		return "processing failed"
	}
}
