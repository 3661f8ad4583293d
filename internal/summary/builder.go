package summary

import "github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"

// Build turns the final status record and its progress into the completion summary shown to the user.
// Counts that were never observed are left nil.
func Build(docType domain.DocumentType, record *domain.FileRecord, details domain.ProgressDetails) domain.CompletionSummary {
	s := domain.CompletionSummary{DocumentType: docType}

	switch docType {
	case domain.DocumentTypeCatalog:
		s.Catalog = &domain.CatalogSummary{
			ProductsFound:      details.Products,
			PagesProcessed:     details.Pages,
			TablesExtracted:    details.Tables,
			TablesWithProducts: details.TablesWithProducts,
		}

	case domain.DocumentTypePriceList:
		s.PriceList = &domain.PriceListSummary{
			TotalProducts:   details.Products,
			ValidProducts:   details.ValidProducts,
			InvalidProducts: details.InvalidProducts,
			Warnings:        details.Warnings,
			HasErrors:       positive(details.InvalidProducts) || positive(details.Errors),
			ValidShare:      share(details.ValidProducts, details.Products),
		}

	case domain.DocumentTypeSalesDrawing:
		s.SalesDrawing = &domain.SalesDrawingSummary{}
		if record != nil {
			s.SalesDrawing.FileName = record.FileName
			s.SalesDrawing.OrderingNumber = record.OrderingNumber
		}
	}

	return s
}

func positive(v *int) bool {
	return v != nil && *v > 0
}

func share(part, total *int) *float64 {
	if part == nil || total == nil || *total <= 0 {
		return nil
	}

	v := float64(*part) / float64(*total)
	return &v
}
