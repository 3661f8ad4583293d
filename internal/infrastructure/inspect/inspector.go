// Package inspect checks that a local file can actually be read as the document it claims to be.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const DefaultMaxPDFPages = 2000

func init() {
	api.DisableConfigDir()
}

type Inspector struct {
	log         *slog.Logger
	maxPDFPages int
}

type Option func(*Inspector)

func WithMaxPDFPages(n int) Option {
	return func(i *Inspector) {
		if n > 0 {
			i.maxPDFPages = n
		}
	}
}

func New(log *slog.Logger, opts ...Option) *Inspector {
	i := &Inspector{
		log:         log,
		maxPDFPages: DefaultMaxPDFPages,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inspect opens the file and runs the check matching its extension. Problems with the content are
// reported as *domain.ValidationError.
func (i *Inspector) Inspect(ctx context.Context, docType domain.DocumentType, file domain.LocalFile) (err error) {
	name := file.Name
	if name == "" {
		name = filepath.Base(file.Path)
	}
	ext := strings.ToLower(filepath.Ext(name))

	check, ok := i.checkFor(ext)
	if !ok {
		return nil
	}

	f, err := file.Open()
	if err != nil {
		return &domain.ValidationError{Field: "file", Message: "cannot read file: " + pathErrorText(err)}
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if err := check(f); err != nil {
		i.log.DebugContext(ctx, "file rejected by inspection",
			slog.String("document_type", string(docType)),
			slog.String("file_name", name),
			slog.String("err", err.Error()),
		)
		return &domain.ValidationError{Field: "file", Message: err.Error()}
	}

	return nil
}

func (i *Inspector) checkFor(ext string) (func(io.ReadSeeker) error, bool) {
	switch ext {
	case ".pdf":
		return i.checkPDF, true
	case ".xlsx":
		return checkWorkbook, true
	case ".csv":
		return checkCSV, true
	}
	return nil, false
}

func (i *Inspector) checkPDF(rs io.ReadSeeker) error {
	pages, err := PDFPageCount(rs)
	if err != nil {
		return err
	}

	if pages > i.maxPDFPages {
		return fmt.Errorf("PDF has %d pages, at most %d are supported", pages, i.maxPDFPages)
	}

	return nil
}

func pathErrorText(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
