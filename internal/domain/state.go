package domain

import (
	"encoding/json"
	"time"
)

type UploadState string

const (
	StateIdle              UploadState = "idle"
	StateValidating        UploadState = "validating"
	StateExistenceChecking UploadState = "existence_checking"
	StateTransferring      UploadState = "transferring"
	StatePolling           UploadState = "polling"
	StateFetchingResults   UploadState = "fetching_results"
	StateComplete          UploadState = "complete"
	StateFailed            UploadState = "failed"
	StateCancelled         UploadState = "cancelled"
)

func (s UploadState) Terminal() bool {
	return s == StateComplete || s == StateFailed || s == StateCancelled
}

// Event is a progress notification emitted by the upload orchestrator.
type Event struct {
	State         UploadState     `json:"state"`
	FileID        string          `json:"fileId,omitempty"`
	UploadPercent int             `json:"uploadPercent,omitempty"`
	Status        StatusCode      `json:"status,omitempty"`
	Description   string          `json:"description,omitempty"`
	Progress      ProgressDetails `json:"progress"`
	Record        *FileRecord     `json:"-"`
}

// UploadEntry is one row of the upload journal.
type UploadEntry struct {
	ID           string          `db:"id"            json:"id"`
	FileID       *string         `db:"file_id"       json:"file_id,omitempty"`
	DocumentType DocumentType    `db:"document_type" json:"document_type"`
	FileName     string          `db:"file_name"     json:"file_name"`
	State        UploadState     `db:"state"         json:"state"`
	Status       *string         `db:"status"        json:"status,omitempty"`
	StorageKey   *string         `db:"storage_key"   json:"storage_key,omitempty"`
	ErrorMessage *string         `db:"error_message" json:"error_message,omitempty"`
	Summary      json.RawMessage `db:"summary"       json:"summary,omitempty"`
	CreatedAt    time.Time       `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"    json:"updated_at"`
}

// UploadTransition records one journal save of a run: its state and the backend status at that point.
type UploadTransition struct {
	UploadID  string      `db:"upload_id"  json:"-"`
	State     UploadState `db:"state"      json:"state"`
	Status    *string     `db:"status"     json:"status,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}
