package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPollCancelled  = errors.New("polling cancelled")
	ErrUploadNotFound = errors.New("upload not found")
)

// ValidationError is a local input problem detected before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ExistsConflictError reports a duplicate found by the backend before upload.
type ExistsConflictError struct {
	DocumentType DocumentType
	Existing     *FileRecord
}

func (e *ExistsConflictError) Error() string {
	if e.Existing != nil && e.Existing.FileID != "" {
		return fmt.Sprintf("%s already exists as file %s", e.DocumentType, e.Existing.FileID)
	}
	return fmt.Sprintf("%s already exists", e.DocumentType)
}

// NetworkError wraps a transport failure of a status fetch.
type NetworkError struct {
	FileID string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch status of file %s: %v", e.FileID, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProcessingFailedError is a terminal failure reported by the backend.
type ProcessingFailedError struct {
	FileID  string
	Status  StatusCode
	Message string
}

func (e *ProcessingFailedError) Error() string {
	return fmt.Sprintf("processing of file %s failed: %s", e.FileID, e.Message)
}

type TimeoutError struct {
	FileID     string
	Attempts   int
	Elapsed    time.Duration
	LastStatus StatusCode
	Err        error // last transport error, if the final attempt failed to fetch
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("processing is taking longer than expected: file %s, %d attempts in %s",
		e.FileID, e.Attempts, e.Elapsed.Round(time.Millisecond))
	if e.LastStatus != "" {
		msg += fmt.Sprintf(", last status %q", e.LastStatus)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// ResultsFetchError is non-fatal: processing succeeded but listing the results did not.
type ResultsFetchError struct {
	FileID string
	Err    error
}

func (e *ResultsFetchError) Error() string {
	return fmt.Sprintf("failed to fetch results of file %s: %v", e.FileID, e.Err)
}

func (e *ResultsFetchError) Unwrap() error {
	return e.Err
}

// UserMessage renders err the way it is shown to the person who started the upload.
func UserMessage(err error) string {
	var (
		validationErr *ValidationError
		conflictErr   *ExistsConflictError
		failedErr     *ProcessingFailedError
		timeoutErr    *TimeoutError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &conflictErr):
		return "This document was already uploaded. Change the file or its details and try again."
	case errors.As(err, &failedErr):
		return failedErr.Message
	case errors.As(err, &timeoutErr):
		return "Processing is taking longer than expected. Check back later."
	case errors.Is(err, ErrPollCancelled):
		return "Upload cancelled."
	default:
		return "Upload failed: " + err.Error()
	}
}
