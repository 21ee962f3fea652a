package export

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/pkg/format"
	"github.com/jung-kurt/gofpdf"
)

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.ProgressReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{20, 52, 110}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	barColor := [3]int{212, 160, 23}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	goalName := truncateRunes(report.GoalName, 80)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Savings Progress: %s", goalName)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Generated at %s (run %s)", report.GeneratedAt, report.RunID)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	sectionTitle("Summary")
	colWidth := 190.0 / 3
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(colWidth, 7, "Total Saved", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 7, "Target", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 7, "Remaining", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(colWidth, 12, "TRY "+format.Money(float64(report.TotalSaved)), "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 12, "TRY "+format.Money(float64(report.GoalTarget)), "", 0, "L", false, 0, "")
	if report.Remaining < 0 {
		pdf.SetTextColor(0, 128, 0)
	}
	pdf.CellFormat(colWidth, 12, "TRY "+format.Money(float64(report.Remaining)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.Ln(8)

	sectionTitle("Progress")
	pct := float64(report.Percentage)
	label := "N/A"
	fill := 0.0
	if !math.IsNaN(pct) && !math.IsInf(pct, 0) {
		label = format.Number(pct) + "%"
		fill = math.Max(0, math.Min(pct, 100)) / 100
	}
	x, y := pdf.GetX(), pdf.GetY()
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.SetFillColor(235, 235, 235)
	pdf.Rect(x, y, 160, 8, "FD")
	if fill > 0 {
		pdf.SetFillColor(barColor[0], barColor[1], barColor[2])
		pdf.Rect(x, y, 160*fill, 8, "F")
	}
	pdf.SetXY(x+165, y)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(25, 8, label, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	sectionTitle(fmt.Sprintf("Entries (%d)", len(report.Entries)))
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(15, 7, "#", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "B", 0, "R", false, 0, "")
	pdf.CellFormat(95, 7, "  Note", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for i, e := range report.Entries {
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", i+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(e.Date), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, "TRY "+format.Money(e.Amount), "", 0, "R", false, 0, "")
		pdf.CellFormat(95, 6, tr("  "+e.Note), "", 1, "L", false, 0, "")
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by Savings Post (Go) | %s", time.Now().Format("2006-01-02"))), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// truncateRunes corta s em no máximo limit runas, terminando em "...".
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
