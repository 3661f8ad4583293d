package domain

// ProgressDetails holds the counters relevant to a document type.
// A nil field means "not reported yet", which is different from a reported zero.
type ProgressDetails struct {
	Pages              *int `json:"pages,omitempty"`
	Tables             *int `json:"tables,omitempty"`
	TablesWithProducts *int `json:"tablesWithProducts,omitempty"`
	Products           *int `json:"products,omitempty"`
	ValidProducts      *int `json:"validProducts,omitempty"`
	InvalidProducts    *int `json:"invalidProducts,omitempty"`
	Errors             *int `json:"errors,omitempty"`
	Warnings           *int `json:"warnings,omitempty"`
}

func (p ProgressDetails) Empty() bool {
	return p == ProgressDetails{}
}
