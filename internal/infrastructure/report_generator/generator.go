package report_generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const maxProductRows = 500

// Report is everything printed in a completion report.
type Report struct {
	RunID           string
	FileID          string
	FileName        string
	Status          domain.StatusCode
	Summary         domain.CompletionSummary
	Products        []domain.Product
	ResultsDegraded bool
	GeneratedAt     time.Time
}

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateReport(outputPath string, report *Report) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	doc, err := g.build(report).Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}

func (g *Generator) build(report *Report) core.Maroto {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(12, text.NewCol(12, "Upload completion report", props.Text{
		Style: fontstyle.Bold,
		Size:  16,
		Align: align.Center,
	}))

	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	m.AddRows(
		field("File", report.FileName),
		field("File ID", report.FileID),
		field("Run ID", report.RunID),
		field("Document type", string(report.Summary.DocumentType)),
		field("Status", string(report.Status)),
		field("Generated", generatedAt.Format(time.RFC1123)),
	)

	m.AddRow(6)
	m.AddRows(text.NewRow(8, "Summary", props.Text{Style: fontstyle.Bold, Size: 12}))
	m.AddRows(summaryRows(report.Summary)...)

	if report.ResultsDegraded {
		m.AddRow(6)
		m.AddRows(text.NewRow(8, "Extracted products could not be listed. Open the file in the review screen to see them.",
			props.Text{Style: fontstyle.Italic, Size: 9}))
	}

	if len(report.Products) > 0 {
		m.AddRow(6)
		m.AddRows(text.NewRow(8, "Products", props.Text{Style: fontstyle.Bold, Size: 12}))
		m.AddRows(productRows(report.Products)...)
	}

	return m
}

func summaryRows(s domain.CompletionSummary) []core.Row {
	switch {
	case s.Catalog != nil:
		return []core.Row{
			field("Products found", count(s.Catalog.ProductsFound)),
			field("Pages processed", count(s.Catalog.PagesProcessed)),
			field("Tables extracted", count(s.Catalog.TablesExtracted)),
			field("Tables with products", count(s.Catalog.TablesWithProducts)),
		}

	case s.PriceList != nil:
		rows := []core.Row{
			field("Total products", count(s.PriceList.TotalProducts)),
			field("Valid products", count(s.PriceList.ValidProducts)),
			field("Invalid products", count(s.PriceList.InvalidProducts)),
			field("Warnings", count(s.PriceList.Warnings)),
		}
		if s.PriceList.ValidShare != nil {
			rows = append(rows, field("Valid share", strconv.FormatFloat(*s.PriceList.ValidShare*100, 'f', 1, 64)+"%"))
		}
		if s.PriceList.HasErrors {
			rows = append(rows, text.NewRow(6, "Some rows have errors and need review.", props.Text{Style: fontstyle.Bold, Size: 9}))
		}
		return rows

	case s.SalesDrawing != nil:
		return []core.Row{
			field("File name", s.SalesDrawing.FileName),
			field("Ordering number", s.SalesDrawing.OrderingNumber),
		}
	}

	return nil
}

func productRows(products []domain.Product) []core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9}
	rows := []core.Row{
		productRow(6, header, "Ordering number", "Description", "Price"),
	}

	for i, p := range products {
		if i == maxProductRows {
			rows = append(rows, text.NewRow(6, fmt.Sprintf("... and %d more", len(products)-maxProductRows), props.Text{Size: 8}))
			break
		}

		price := "-"
		if p.Price != nil {
			price = strconv.FormatFloat(*p.Price, 'f', 2, 64)
			if p.Currency != "" {
				price += " " + p.Currency
			}
		}

		rows = append(rows, productRow(5, props.Text{Size: 8}, p.OrderingNumber, p.Description, price))
	}

	return rows
}

func productRow(height float64, style props.Text, orderingNumber, description, price string) core.Row {
	return row.New(height).Add(
		text.NewCol(4, orderingNumber, style),
		text.NewCol(6, description, style),
		text.NewCol(2, price, props.Text{Style: style.Style, Size: style.Size, Align: align.Right}),
	)
}

func field(label, value string) core.Row {
	if value == "" {
		value = "-"
	}

	return text.NewRow(6, label+": "+value, props.Text{Size: 10})
}

func count(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
