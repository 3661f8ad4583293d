// Package vocabulary maps backend processing status codes to classifications and display text,
// one table per document type.
package vocabulary

import (
	"fmt"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
)

const FallbackText = "Processing..."

type entry struct {
	code  domain.StatusCode
	class domain.Classification
	text  string
}

type table struct {
	order   []domain.StatusCode
	entries map[domain.StatusCode]entry
}

var tables = map[domain.DocumentType]*table{
	domain.DocumentTypeCatalog: newTable(
		transient(domain.StatusTextractStarted, "Starting document analysis"),
		transient(domain.StatusTextractProcessing, "Analyzing document"),
		transient(domain.StatusTextractCompleted, "Document analysis complete"),
		transient(domain.StatusParsingTables, "Parsing tables"),
		transient(domain.StatusSavingProducts, "Saving products"),
		success(domain.StatusPendingReview, "Ready for review"),
		success(domain.StatusCompleted, "Processing complete"),
		failure(domain.StatusFailed, "Processing failed"),
	),
	domain.DocumentTypePriceList: newTable(
		transient(domain.StatusProcessing, "Processing price list"),
		transient(domain.StatusValidatingSchema, "Validating columns"),
		transient(domain.StatusProcessingRows, "Processing rows"),
		transient(domain.StatusSavingProducts, "Saving products"),
		success(domain.StatusPendingReview, "Ready for review"),
		success(domain.StatusPendingReviewWithErrors, "Ready for review, some rows have errors"),
		success(domain.StatusCompleted, "Processing complete"),
		failure(domain.StatusFailed, "Processing failed"),
	),
	domain.DocumentTypeSalesDrawing: newTable(
		transient(domain.StatusPendingUpload, "Waiting for upload"),
		success(domain.StatusPendingReview, "Ready for review"),
		success(domain.StatusCompleted, "Processing complete"),
		failure(domain.StatusFailed, "Processing failed"),
	),
}

func transient(code domain.StatusCode, text string) entry {
	return entry{code: code, class: domain.ClassTransient, text: text}
}

func success(code domain.StatusCode, text string) entry {
	return entry{code: code, class: domain.ClassTerminalSuccess, text: text}
}

func failure(code domain.StatusCode, text string) entry {
	return entry{code: code, class: domain.ClassTerminalFailure, text: text}
}

// newTable panics on malformed tables so that mistakes surface at package init.
func newTable(entries ...entry) *table {
	t := &table{
		order:   make([]domain.StatusCode, 0, len(entries)),
		entries: make(map[domain.StatusCode]entry, len(entries)),
	}

	for _, e := range entries {
		if _, dup := t.entries[e.code]; dup {
			panic(fmt.Sprintf("vocabulary: duplicate status code %q", e.code))
		}
		if e.code == domain.StatusFailed && e.class != domain.ClassTerminalFailure {
			panic("vocabulary: failed must classify as terminal failure")
		}

		t.order = append(t.order, e.code)
		t.entries[e.code] = e
	}

	if _, ok := t.entries[domain.StatusFailed]; !ok {
		panic("vocabulary: table has no failed status")
	}

	return t
}

// Classify returns ClassUnknown for codes the type does not define; callers keep polling on it.
func Classify(docType domain.DocumentType, code domain.StatusCode) domain.Classification {
	if code == domain.StatusFailed {
		return domain.ClassTerminalFailure
	}

	t, ok := tables[docType]
	if !ok {
		return domain.ClassUnknown
	}

	e, ok := t.entries[code]
	if !ok {
		return domain.ClassUnknown
	}

	return e.class
}

// Describe returns the user-facing text for a status. The backend's free-text stage is appended to
// transient phrases and used on its own for unknown codes.
func Describe(docType domain.DocumentType, code domain.StatusCode, stage string) string {
	if t, ok := tables[docType]; ok {
		if e, ok := t.entries[code]; ok {
			if e.class == domain.ClassTransient && stage != "" {
				return fmt.Sprintf("%s (%s)", e.text, stage)
			}
			return e.text
		}
	}

	if code == domain.StatusFailed {
		return "Processing failed"
	}

	if stage != "" {
		return stage
	}

	return FallbackText
}

// Codes lists the type's status codes in pipeline order.
func Codes(docType domain.DocumentType) []domain.StatusCode {
	t, ok := tables[docType]
	if !ok {
		return []domain.StatusCode{domain.StatusFailed}
	}

	return append([]domain.StatusCode(nil), t.order...)
}

func Known(docType domain.DocumentType, code domain.StatusCode) bool {
	return Classify(docType, code) != domain.ClassUnknown
}
