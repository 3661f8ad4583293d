package inspect

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFPageCount reads the page count of a PDF using relaxed validation, the way most viewers
// tolerate slightly malformed files.
func PDFPageCount(rs io.ReadSeeker) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := api.PageCount(rs, conf)
	if err != nil {
		return 0, fmt.Errorf("file is not a readable PDF: %w", err)
	}

	if pages == 0 {
		return 0, errors.New("PDF has no pages")
	}

	return pages, nil
}
