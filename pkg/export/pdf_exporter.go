package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth   float64 = 277 // A4 landscape minus margins
	minColWidth float64 = 18
	cellHeight  float64 = 6
)

// columnsPerPage is the widest column group that keeps every column at minColWidth.
func columnsPerPage() int {
	return int(math.Floor(pageWidth / minColWidth))
}

// PDFExporter renders datasets into a tabular landscape PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ContentType of the rendered output.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Render creates a PDF with the dataset title and a table body. Wide datasets
// are split into column groups, each repeated for every row.
func (e *PDFExporter) Render(data Dataset) ([]byte, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)

	perPage := columnsPerPage()
	for start := 0; start < len(data.Headers); start += perPage {
		end := start + perPage
		if end > len(data.Headers) {
			end = len(data.Headers)
		}
		pdf.AddPage()
		if data.Title != "" {
			pdf.SetFont("Arial", "B", 13)
			pdf.CellFormat(0, 9, data.Title, "", 1, "C", false, 0, "")
			pdf.Ln(3)
		}
		colWidth := pageWidth / float64(end-start)

		pdf.SetFont("Arial", "B", 7)
		for _, header := range data.Headers[start:end] {
			pdf.CellFormat(colWidth, cellHeight, fit(pdf, header, colWidth), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 7)
		for _, row := range data.Rows {
			for _, value := range row[start:end] {
				pdf.CellFormat(colWidth, cellHeight, fit(pdf, value, colWidth), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fit truncates text to the cell width.
func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	limit := width - 1.5
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
