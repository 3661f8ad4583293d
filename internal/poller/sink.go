package poller

import (
	"context"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
)

// Sink receives every non-terminal status observed by a Poll call, in fetch order.
// Observe is called synchronously from the polling loop.
type Sink interface {
	Observe(ctx context.Context, status domain.StatusCode, record *domain.FileRecord)
}

type SinkFunc func(ctx context.Context, status domain.StatusCode, record *domain.FileRecord)

func (f SinkFunc) Observe(ctx context.Context, status domain.StatusCode, record *domain.FileRecord) {
	f(ctx, status, record)
}

var Discard Sink = SinkFunc(func(context.Context, domain.StatusCode, *domain.FileRecord) {})

type multiSink []Sink

// Multi fans every observation out to sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Observe(ctx context.Context, status domain.StatusCode, record *domain.FileRecord) {
	for _, s := range m {
		s.Observe(ctx, status, record)
	}
}

type Observation struct {
	Status domain.StatusCode
	Record *domain.FileRecord
}

// ChannelSink sends observations to a channel. The send blocks until it is received or ctx is done,
// in which case the observation is dropped.
type ChannelSink chan<- Observation

func (c ChannelSink) Observe(ctx context.Context, status domain.StatusCode, record *domain.FileRecord) {
	select {
	case c <- Observation{Status: status, Record: record}:
	case <-ctx.Done():
	}
}
