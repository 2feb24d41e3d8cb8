// Package cert renders the printable exam completion certificate.
package cert

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Igaki12/news-network-api/domain/article"
	"github.com/Igaki12/news-network-api/domain/quiz"
)

// Generate renders a landscape A4 PDF certificate for a finalized exam and
// returns the document bytes.
func Generate(recipient, dayKey string, result *quiz.ExamResult, issuedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Border frame
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(30, 60, 120)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(11, 11, pageW-22, pageH-22, "D")

	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetTextColor(30, 60, 120)
	pdf.SetY(34)
	pdf.CellFormat(0, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 60, 60)
	pdf.Ln(8)
	pdf.CellFormat(0, 8, "This certifies that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(20, 20, 20)
	pdf.Ln(2)
	pdf.CellFormat(0, 12, recipient, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 60, 60)
	pdf.Ln(2)
	pdf.CellFormat(0, 8,
		fmt.Sprintf("completed the News Network timed exam for %s", article.FormatDayKey(dayKey)),
		"", 1, "C", false, 0, "")

	grade := "Participation"
	if result.Passed {
		grade = "Pass"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(30, 60, 120)
	pdf.Ln(6)
	pdf.CellFormat(0, 10,
		fmt.Sprintf("Result: %s  -  %d / %d correct (%.0f%%)",
			grade, result.CorrectCount, result.Total, result.Accuracy*100),
		"", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 8,
		fmt.Sprintf("Estimated deviation score: %d", result.EstimatedDeviation),
		"", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetY(pageH - 38)
	pdf.CellFormat(0, 7,
		fmt.Sprintf("Issued on %s", issuedAt.Format("January 2, 2006")),
		"", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "News Network Quiz Engine", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
