package upload

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
)

const DefaultMaxFileSize int64 = 50 << 20

var allowedExtensions = map[domain.DocumentType][]string{
	domain.DocumentTypeCatalog:      {".pdf"},
	domain.DocumentTypePriceList:    {".xlsx", ".xls", ".csv"},
	domain.DocumentTypeSalesDrawing: {".pdf", ".png", ".jpg", ".jpeg"},
}

// AllowedExtensions returns the lower-case file extensions accepted for docType.
func AllowedExtensions(docType domain.DocumentType) []string {
	return append([]string(nil), allowedExtensions[docType]...)
}

// Validate checks an upload request without touching the network or the file contents.
func Validate(req *domain.UploadRequest, maxFileSize int64) error {
	if req == nil {
		return &domain.ValidationError{Message: "empty upload request"}
	}

	if !req.DocumentType.Valid() {
		return &domain.ValidationError{
			Field:   "documentType",
			Message: "unsupported document type " + strconv.Quote(string(req.DocumentType)),
		}
	}

	if err := validateFile(req.DocumentType, req.File, maxFileSize); err != nil {
		return err
	}

	return validateForm(req.DocumentType, req.Form)
}

func validateFile(docType domain.DocumentType, file domain.LocalFile, maxFileSize int64) error {
	name := file.Name
	if name == "" {
		name = filepath.Base(file.Path)
	}

	if name == "" || name == "." || name == string(filepath.Separator) {
		return &domain.ValidationError{Field: "file", Message: "no file selected"}
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(allowedExtensions[docType], ext) {
		return &domain.ValidationError{
			Field:   "file",
			Message: "file type " + strconv.Quote(ext) + " is not allowed, expected one of " + strings.Join(allowedExtensions[docType], ", "),
		}
	}

	switch {
	case file.Size <= 0:
		return &domain.ValidationError{Field: "file", Message: "file is empty"}
	case file.Size > maxFileSize:
		return &domain.ValidationError{
			Field:   "file",
			Message: "file is larger than " + formatSize(maxFileSize),
		}
	}

	return nil
}

func validateForm(docType domain.DocumentType, form domain.FormData) error {
	switch docType {
	case domain.DocumentTypeCatalog:
		return required("supplier", form.Supplier)

	case domain.DocumentTypePriceList:
		if err := required("supplier", form.Supplier); err != nil {
			return err
		}
		if err := required("year", form.Year); err != nil {
			return err
		}
		if year, err := strconv.Atoi(strings.TrimSpace(form.Year)); err != nil || year < 1900 || year > 9999 {
			return &domain.ValidationError{Field: "year", Message: "year must be a four-digit number"}
		}

	case domain.DocumentTypeSalesDrawing:
		return required("orderingNumber", form.OrderingNumber)
	}

	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &domain.ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

func formatSize(n int64) string {
	const mib = 1 << 20
	if n >= mib && n%mib == 0 {
		return strconv.FormatInt(n/mib, 10) + " MiB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
