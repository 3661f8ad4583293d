package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
)

// PresignedUploader sends the file body to the presigned URL issued by the backend.
type PresignedUploader struct {
	log        *slog.Logger
	httpClient *http.Client
}

func NewPresignedUploader(log *slog.Logger, httpClient *http.Client) *PresignedUploader {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &PresignedUploader{
		log:        log,
		httpClient: httpClient,
	}
}

func (u *PresignedUploader) Upload(
	ctx context.Context,
	file domain.LocalFile,
	target *domain.UploadTarget,
	onProgress func(percent int),
) (err error) {
	if target.URL == "" {
		return errors.New("upload target has no url")
	}

	f, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	size := file.Size
	if size <= 0 {
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat file: %w", err)
		}
		size = info.Size()
	}

	method := strings.ToUpper(target.Method)
	if method == "" {
		method = http.MethodPut
	}

	body := newProgressReader(f, size, onProgress)

	req, err := http.NewRequestWithContext(ctx, method, target.URL, body)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.ContentLength = size

	for k, v := range target.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Content-Type") == "" && file.ContentType != "" {
		req.Header.Set("Content-Type", file.ContentType)
	}

	u.log.DebugContext(ctx, "uploading file to presigned url",
		slog.String("storage_key", target.StorageKey),
		slog.Int64("size", size),
	)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("failed to upload file: storage responded %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	body.report(size)

	return nil
}
