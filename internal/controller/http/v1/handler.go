package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/go-chi/chi/v5"
)

type UploadsHandler struct {
	uploadsRepository UploadsRepository
}

type UploadsRepository interface {
	Uploads(ctx context.Context, limit, offset uint64) ([]*domain.UploadEntry, int, error)
	UploadByFileID(ctx context.Context, fileID string) (*domain.UploadEntry, error)
	Transitions(ctx context.Context, uploadID string) ([]*domain.UploadTransition, error)
}

func NewUploadsHandler(uploadsRepository UploadsRepository) *UploadsHandler {
	return &UploadsHandler{
		uploadsRepository: uploadsRepository,
	}
}

type GetUploadsResponse struct {
	Uploads    []*domain.UploadEntry `json:"uploads"`
	Pagination Pagination            `json:"pagination"`
}

type GetUploadResponse struct {
	Upload      *domain.UploadEntry        `json:"upload"`
	Transitions []*domain.UploadTransition `json:"transitions"`
}

func (h *UploadsHandler) GetUploads(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	uploads, total, err := h.uploadsRepository.Uploads(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if uploads == nil {
		uploads = []*domain.UploadEntry{}
	}

	writeJSON(w, http.StatusOK, GetUploadsResponse{
		Uploads:    uploads,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *UploadsHandler) GetUploadByFileID(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "file_id")

	upload, err := h.uploadsRepository.UploadByFileID(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, domain.ErrUploadNotFound) {
			writeError(w, "upload for file "+strconv.Quote(fileID)+" not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	transitions, err := h.uploadsRepository.Transitions(r.Context(), upload.ID)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if transitions == nil {
		transitions = []*domain.UploadTransition{}
	}

	writeJSON(w, http.StatusOK, GetUploadResponse{
		Upload:      upload,
		Transitions: transitions,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	data, _ := json.Marshal(map[string]string{"error": msg})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}
