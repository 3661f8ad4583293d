package domain

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FormData carries the user-entered fields that accompany an upload.
type FormData struct {
	Supplier       string `json:"supplier,omitempty"`
	Year           string `json:"year,omitempty"`
	OrderingNumber string `json:"orderingNumber,omitempty"`
	Description    string `json:"description,omitempty"`
}

type LocalFile struct {
	Path        string
	Name        string
	Size        int64
	ContentType string
}

// StatLocalFile describes the regular file at path.
func StatLocalFile(path string) (LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return LocalFile{}, fmt.Errorf("failed to stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return LocalFile{}, fmt.Errorf("%s is not a regular file", path)
	}

	return LocalFile{
		Path:        path,
		Name:        info.Name(),
		Size:        info.Size(),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
	}, nil
}

func (f LocalFile) Open() (*os.File, error) {
	return os.Open(f.Path)
}

type UploadRequest struct {
	DocumentType DocumentType
	File         LocalFile
	Form         FormData
}

// UploadTarget is the presigned destination issued by the backend for one file.
type UploadTarget struct {
	FileID     string            `json:"fileId"`
	StorageKey string            `json:"storageKey"`
	URL        string            `json:"uploadUrl,omitempty"`
	Bucket     string            `json:"bucket,omitempty"`
	Method     string            `json:"method,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	ExpiresAt  *time.Time        `json:"expiresAt,omitempty"`
}

type ExistsResult struct {
	Exists bool        `json:"exists"`
	File   *FileRecord `json:"file,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type Product struct {
	ID             string   `json:"id"`
	OrderingNumber string   `json:"orderingNumber"`
	Description    string   `json:"description,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	Page           *int     `json:"page,omitempty"`
}

type ProductsPage struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}
