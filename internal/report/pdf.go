// Package report renders a completed analysis as a downloadable PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/wordbubble/internal/app"
)

// WritePDF renders the ranked word-frequency table of rep as a simple
// one-page-per-need PDF. Layout is intentionally plain: title, source URL,
// then a rank/word/count table.
func WritePDF(w io.Writer, rep *app.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	title := rep.Title
	if title == "" {
		title = "Word frequency report"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, title, "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 200)
	pdf.WriteLinkString(5, rep.URL, rep.URL)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	if rep.Description != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, rep.Description, "", "L", false)
		pdf.Ln(2)
	}

	for _, warning := range rep.Warnings {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Note: "+warning, "", "L", false)
	}
	pdf.Ln(2)

	// Table header
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(15, 7, "#", "B", 0, "R", false, 0, "")
	pdf.CellFormat(110, 7, "Word", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Count", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if len(rep.Words) == 0 {
		pdf.CellFormat(0, 7, "No words to report.", "", 1, "L", false, 0, "")
	}
	for i, wc := range rep.Words {
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", i+1), "", 0, "R", false, 0, "")
		pdf.CellFormat(110, 6, wc.Word, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", wc.Count), "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s by wordbubble %s",
		time.Now().UTC().Format(time.RFC3339), app.BuildVersion), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
