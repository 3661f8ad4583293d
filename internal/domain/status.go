package domain

type StatusCode string

const (
	StatusFailed StatusCode = "failed"

	StatusCompleted               StatusCode = "completed"
	StatusPendingReview           StatusCode = "pending_review"
	StatusPendingReviewWithErrors StatusCode = "pending_review_with_errors"

	// catalog
	StatusTextractStarted    StatusCode = "textract_started"
	StatusTextractProcessing StatusCode = "textract_processing"
	StatusTextractCompleted  StatusCode = "textract_completed"
	StatusParsingTables      StatusCode = "parsing_tables"
	StatusSavingProducts     StatusCode = "saving_products"

	// price list
	StatusProcessing       StatusCode = "processing"
	StatusValidatingSchema StatusCode = "validating_schema"
	StatusProcessingRows   StatusCode = "processing_rows"

	// sales drawing
	StatusPendingUpload StatusCode = "pending_upload"
)

type Classification int

const (
	ClassUnknown Classification = iota
	ClassTransient
	ClassTerminalSuccess
	ClassTerminalFailure
)

func (c Classification) String() string {
	switch c {
	case ClassTransient:
		return "transient"
	case ClassTerminalSuccess:
		return "terminal_success"
	case ClassTerminalFailure:
		return "terminal_failure"
	default:
		return "unknown"
	}
}

func (c Classification) Terminal() bool {
	return c == ClassTerminalSuccess || c == ClassTerminalFailure
}
