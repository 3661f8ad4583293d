package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/jszwec/csvutil"
)

// Row is one line of a tab-separated batch manifest.
type Row struct {
	Line           int    `csv:"-"`
	Type           string `csv:"type"`
	File           string `csv:"file"`
	Supplier       string `csv:"supplier"`
	Year           string `csv:"year"`
	OrderingNumber string `csv:"ordering_number"`
	Description    string `csv:"description"`
}

func (r *Row) validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}

	if _, err := domain.ParseDocumentType(strings.TrimSpace(r.Type)); err != nil {
		return err
	}

	if strings.TrimSpace(r.File) == "" {
		return errors.New("file is required")
	}

	return nil
}

// Request resolves the row's file relative to baseDir and builds the upload request.
func (r *Row) Request(baseDir string) (*domain.UploadRequest, error) {
	docType, err := domain.ParseDocumentType(strings.TrimSpace(r.Type))
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(r.File)
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	file, err := domain.StatLocalFile(path)
	if err != nil {
		return nil, err
	}

	return &domain.UploadRequest{
		DocumentType: docType,
		File:         file,
		Form: domain.FormData{
			Supplier:       strings.TrimSpace(r.Supplier),
			Year:           strings.TrimSpace(r.Year),
			OrderingNumber: strings.TrimSpace(r.OrderingNumber),
			Description:    strings.TrimSpace(r.Description),
		},
	}, nil
}

func ReadFile(filename string) (_ []*Row, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return Read(f)
}

// Read decodes manifest rows. Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]*Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if missing := missingColumns(dec.Header()); len(missing) > 0 {
		return nil, fmt.Errorf("manifest header is missing columns: %s", strings.Join(missing, ", "))
	}

	var rows []*Row
	for {
		var row Row

		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode manifest row #%d: %w", len(rows)+1, err)
		}

		line, _ := reader.FieldPos(0)
		row.Line = line

		if err := row.validate(); err != nil {
			return nil, fmt.Errorf("invalid manifest row at line %d: %w", row.Line, err)
		}

		rows = append(rows, &row)
	}

	return rows, nil
}

func missingColumns(header []string) []string {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}

	var missing []string
	for _, col := range []string{"type", "file"} {
		if !seen[col] {
			missing = append(missing, col)
		}
	}

	return missing
}
