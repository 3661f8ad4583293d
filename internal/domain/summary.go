package domain

type CompletionSummary struct {
	DocumentType DocumentType         `json:"documentType"`
	Catalog      *CatalogSummary      `json:"catalog,omitempty"`
	PriceList    *PriceListSummary    `json:"priceList,omitempty"`
	SalesDrawing *SalesDrawingSummary `json:"salesDrawing,omitempty"`
}

type CatalogSummary struct {
	ProductsFound      *int `json:"productsFound,omitempty"`
	PagesProcessed     *int `json:"pagesProcessed,omitempty"`
	TablesExtracted    *int `json:"tablesExtracted,omitempty"`
	TablesWithProducts *int `json:"tablesWithProducts,omitempty"`
}

type PriceListSummary struct {
	TotalProducts   *int `json:"totalProducts,omitempty"`
	ValidProducts   *int `json:"validProducts,omitempty"`
	InvalidProducts *int `json:"invalidProducts,omitempty"`
	Warnings        *int `json:"warnings,omitempty"`
	HasErrors       bool `json:"hasErrors"`

	// ValidShare is ValidProducts/TotalProducts, set only when both are known and the total is positive.
	ValidShare *float64 `json:"validShare,omitempty"`
}

type SalesDrawingSummary struct {
	FileName       string `json:"fileName"`
	OrderingNumber string `json:"orderingNumber"`
}
