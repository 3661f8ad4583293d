// Package firestore reads file processing records straight from the backend's Firestore collection.
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	fs "cloud.google.com/go/firestore"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultCollection = "files"

var ErrFileNotFound = errors.New("file not found")

func NewClient(ctx context.Context, projectID, credentialsFile string) (*fs.Client, error) {
	if projectID == "" {
		return nil, errors.New("firestore project id must be provided")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := fs.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return client, nil
}

type StatusFetcher struct {
	log        *slog.Logger
	client     *fs.Client
	collection string
}

func NewStatusFetcher(log *slog.Logger, client *fs.Client, collection string) *StatusFetcher {
	if collection == "" {
		collection = DefaultCollection
	}

	return &StatusFetcher{
		log:        log,
		client:     client,
		collection: collection,
	}
}

func (f *StatusFetcher) FetchStatus(ctx context.Context, fileID string) (*domain.FileRecord, error) {
	snap, err := f.client.Collection(f.collection).Doc(fileID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, fileID)
		}
		return nil, fmt.Errorf("failed to get file document: %w", err)
	}

	var record domain.FileRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, fmt.Errorf("failed to decode file document: %w", err)
	}

	if record.FileID == "" {
		record.FileID = snap.Ref.ID
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = snap.UpdateTime
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = snap.CreateTime
	}

	f.log.DebugContext(ctx, "file document read",
		slog.String("file_id", record.FileID),
		slog.String("status", string(record.Status)),
	)

	return &record, nil
}
