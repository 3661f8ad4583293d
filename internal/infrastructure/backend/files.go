package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
)

type existsRequest struct {
	DocumentType   domain.DocumentType `json:"documentType"`
	Supplier       string              `json:"supplier,omitempty"`
	Year           string              `json:"year,omitempty"`
	OrderingNumber string              `json:"orderingNumber,omitempty"`
}

type uploadURLRequest struct {
	DocumentType domain.DocumentType `json:"documentType"`
	FileName     string              `json:"fileName"`
	ContentType  string              `json:"contentType"`
	Size         int64               `json:"size"`
	Form         domain.FormData     `json:"form"`
}

func filePath(fileID string, elem ...string) string {
	p := "/files/" + url.PathEscape(fileID)
	for _, e := range elem {
		p += "/" + e
	}
	return p
}

// FetchStatus reads the processing record of a file. The payload is schema-checked first, so a
// malformed record surfaces as an error instead of a zero-valued status.
func (c *Client) FetchStatus(ctx context.Context, fileID string) (*domain.FileRecord, error) {
	var payload statusPayload
	if err := c.do(ctx, http.MethodGet, filePath(fileID, "status"), nil, nil, &payload, c.statusSchema); err != nil {
		return nil, fmt.Errorf("failed to fetch status: %w", err)
	}

	record := payload.FileRecord
	record.CreatedAt = c.parseTimestamp(ctx, "createdAt", payload.CreatedAt)
	record.UpdatedAt = c.parseTimestamp(ctx, "updatedAt", payload.UpdatedAt)

	if record.FileID == "" {
		record.FileID = fileID
	}

	return &record, nil
}

// statusPayload reads the timestamps as raw strings; they shadow the embedded record's fields.
type statusPayload struct {
	domain.FileRecord
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// parseTimestamp is best-effort: timestamps are diagnostic, so an unreadable one becomes the zero time.
// Values without a zone are read as UTC.
func (c *Client) parseTimestamp(ctx context.Context, field string, raw *string) time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return time.Time{}
	}

	value := strings.TrimSpace(*raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	c.log.DebugContext(ctx, "ignoring unreadable timestamp",
		slog.String("field", field),
		slog.String("value", value),
	)

	return time.Time{}
}

// CheckExists asks whether a document with the same identifying form fields was already uploaded.
// A 400 or 422 answer carrying an error message is a validation problem, not a transport failure.
func (c *Client) CheckExists(ctx context.Context, form domain.FormData, docType domain.DocumentType) (*domain.ExistsResult, error) {
	body := existsRequest{
		DocumentType:   docType,
		Supplier:       form.Supplier,
		Year:           form.Year,
		OrderingNumber: form.OrderingNumber,
	}

	var res domain.ExistsResult
	err := c.do(ctx, http.MethodPost, "/files/exists", nil, body, &res, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && (statusErr.Code == http.StatusBadRequest || statusErr.Code == http.StatusUnprocessableEntity) {
			if msg, ok := errorMessage(err); ok {
				return &domain.ExistsResult{Error: msg}, nil
			}
		}
		return nil, fmt.Errorf("failed to check file existence: %w", err)
	}

	c.log.DebugContext(ctx, "existence checked",
		slog.String("document_type", string(docType)),
		slog.Bool("exists", res.Exists),
	)

	return &res, nil
}

// AcquireTarget requests a presigned upload destination for the request's file.
func (c *Client) AcquireTarget(ctx context.Context, req *domain.UploadRequest) (*domain.UploadTarget, error) {
	name := req.File.Name
	if name == "" {
		name = filepath.Base(req.File.Path)
	}

	contentType := req.File.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body := uploadURLRequest{
		DocumentType: req.DocumentType,
		FileName:     name,
		ContentType:  contentType,
		Size:         req.File.Size,
		Form:         req.Form,
	}

	var target domain.UploadTarget
	if err := c.do(ctx, http.MethodPost, "/files/upload-url", nil, body, &target, nil); err != nil {
		return nil, fmt.Errorf("failed to acquire upload target: %w", err)
	}

	if target.FileID == "" {
		return nil, errors.New("failed to acquire upload target: response has no file id")
	}

	if target.Headers == nil {
		target.Headers = map[string]string{}
	}
	if _, ok := target.Headers["Content-Type"]; !ok {
		target.Headers["Content-Type"] = contentType
	}

	return &target, nil
}

// FetchProducts lists the products extracted from a processed file.
func (c *Client) FetchProducts(ctx context.Context, fileID string, docType domain.DocumentType) (*domain.ProductsPage, error) {
	query := url.Values{"documentType": {string(docType)}}

	var page domain.ProductsPage
	if err := c.do(ctx, http.MethodGet, filePath(fileID, "products"), query, nil, &page, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	if page.Count == 0 {
		page.Count = len(page.Products)
	}

	return &page, nil
}
