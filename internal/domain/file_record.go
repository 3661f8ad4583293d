package domain

import "time"

// FileRecord is the polled processing state of an uploaded file as reported by the backend.
// Counters are nil until the backend has reported them.
type FileRecord struct {
	FileID          string       `firestore:"fileId"          json:"fileId"`
	DocumentType    DocumentType `firestore:"documentType"    json:"documentType,omitempty"`
	Status          StatusCode   `firestore:"status"          json:"status"`
	ProcessingStage string       `firestore:"processingStage" json:"processingStage,omitempty"`
	Error           string       `firestore:"error"           json:"error,omitempty"`
	FileName        string       `firestore:"fileName"        json:"fileName,omitempty"`
	OrderingNumber  string       `firestore:"orderingNumber"  json:"orderingNumber,omitempty"`

	PagesCount           *int `firestore:"pagesCount"           json:"pagesCount,omitempty"`
	TablesCount          *int `firestore:"tablesCount"          json:"tablesCount,omitempty"`
	TablesWithProducts   *int `firestore:"tablesWithProducts"   json:"tablesWithProducts,omitempty"`
	ProductsCount        *int `firestore:"productsCount"        json:"productsCount,omitempty"`
	ValidProductsCount   *int `firestore:"validProductsCount"   json:"validProductsCount,omitempty"`
	InvalidProductsCount *int `firestore:"invalidProductsCount" json:"invalidProductsCount,omitempty"`
	TotalErrors          *int `firestore:"totalErrors"          json:"totalErrors,omitempty"`
	TotalWarnings        *int `firestore:"totalWarnings"        json:"totalWarnings,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
