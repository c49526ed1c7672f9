// Package export writes schedules to PDF documents.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"registro/models"

	"github.com/go-pdf/fpdf"
)

// DefaultFileName is the name of the exported schedule document.
const DefaultFileName = "horarios.pdf"

// Column widths in millimetres for a landscape A4 page.
var columnWidths = []float64{22, 34, 24, 14, 24, 24, 76, 18, 20}

// PDFExporter renders schedules as a single-table PDF.
type PDFExporter struct {
	Dir      string
	FileName string
}

// NewPDFExporter creates an exporter writing into dir.
func NewPDFExporter(dir string) *PDFExporter {
	return &PDFExporter{Dir: dir, FileName: DefaultFileName}
}

// Export writes the document to Dir and returns its path.
func (e *PDFExporter) Export(entries []models.ScheduleEntry) (string, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := e.FileName
	if name == "" {
		name = DefaultFileName
	}
	path := filepath.Join(e.Dir, name)

	if err := build(entries).OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Write streams the document to w.
func (e *PDFExporter) Write(w io.Writer, entries []models.ScheduleEntry) error {
	if err := build(entries).Output(w); err != nil {
		return fmt.Errorf("failed to render schedule pdf: %w", err)
	}
	return nil
}

func build(entries []models.ScheduleEntry) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(models.ScheduleTitle, true)
	pdf.AddPage()

	// Core fonts are cp1252; accented headers need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(models.ScheduleTitle), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range models.ScheduleColumns {
		pdf.CellFormat(columnWidths[i], 7, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range entries {
		for i, cell := range entry.Cells() {
			pdf.CellFormat(columnWidths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf
}
