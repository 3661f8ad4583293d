package domain

import "fmt"

type DocumentType string

const (
	DocumentTypeCatalog      DocumentType = "catalog"
	DocumentTypeSalesDrawing DocumentType = "sales_drawing"
	DocumentTypePriceList    DocumentType = "price_list"
)

var DocumentTypes = []DocumentType{
	DocumentTypeCatalog,
	DocumentTypeSalesDrawing,
	DocumentTypePriceList,
}

func ParseDocumentType(s string) (DocumentType, error) {
	for _, t := range DocumentTypes {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown document type %q", s)
}

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeCatalog, DocumentTypeSalesDrawing, DocumentTypePriceList:
		return true
	}
	return false
}

// HasProducts reports whether processed files of this type expose an extracted product list.
func (t DocumentType) HasProducts() bool {
	return t == DocumentTypeCatalog || t == DocumentTypePriceList
}
