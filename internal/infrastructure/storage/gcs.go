package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	gcs "cloud.google.com/go/storage"
	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"google.golang.org/api/option"
)

const gcsChunkSize = 8 << 20

func NewGCSClient(ctx context.Context, credentialsFile string) (*gcs.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return client, nil
}

// GCSUploader writes the file straight into a bucket object named by the target's storage key.
type GCSUploader struct {
	log           *slog.Logger
	client        *gcs.Client
	defaultBucket string
}

func NewGCSUploader(log *slog.Logger, client *gcs.Client, defaultBucket string) *GCSUploader {
	return &GCSUploader{
		log:           log,
		client:        client,
		defaultBucket: defaultBucket,
	}
}

func (u *GCSUploader) Upload(
	ctx context.Context,
	file domain.LocalFile,
	target *domain.UploadTarget,
	onProgress func(percent int),
) (err error) {
	bucket := target.Bucket
	if bucket == "" {
		bucket = u.defaultBucket
	}
	if bucket == "" || target.StorageKey == "" {
		return errors.New("upload target has no bucket or storage key")
	}

	f, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	progress := newProgressReader(nil, file.Size, onProgress)

	w := u.client.Bucket(bucket).Object(target.StorageKey).NewWriter(ctx)
	w.ChunkSize = gcsChunkSize
	w.ContentType = file.ContentType
	if ct, ok := target.Headers["Content-Type"]; ok && w.ContentType == "" {
		w.ContentType = ct
	}
	w.Metadata = map[string]string{"fileId": target.FileID}
	w.ProgressFunc = progress.report

	u.log.DebugContext(ctx, "uploading file to bucket",
		slog.String("bucket", bucket),
		slog.String("storage_key", target.StorageKey),
	)

	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object: %w", err)
	}

	progress.report(file.Size)

	return nil
}
