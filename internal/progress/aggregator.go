package progress

import "github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"

// Aggregate picks the counters that matter for docType out of a status record.
// Counters the backend has not reported stay nil.
func Aggregate(docType domain.DocumentType, record *domain.FileRecord) domain.ProgressDetails {
	if record == nil {
		return domain.ProgressDetails{}
	}

	switch docType {
	case domain.DocumentTypeCatalog:
		return domain.ProgressDetails{
			Pages:              clone(record.PagesCount),
			Tables:             clone(record.TablesCount),
			TablesWithProducts: clone(record.TablesWithProducts),
			Products:           clone(record.ProductsCount),
		}

	case domain.DocumentTypePriceList:
		return domain.ProgressDetails{
			Products:        clone(record.ProductsCount),
			ValidProducts:   clone(record.ValidProductsCount),
			InvalidProducts: clone(record.InvalidProductsCount),
			Errors:          clone(record.TotalErrors),
			Warnings:        clone(record.TotalWarnings),
		}

	default:
		return domain.ProgressDetails{}
	}
}

func clone(v *int) *int {
	if v == nil {
		return nil
	}

	c := *v
	return &c
}
