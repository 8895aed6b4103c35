package receipt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"jornal/internal/domain/workday"
)

// Generator renders fortnight receipts as PDF files under Dir.
type Generator struct {
	Dir string
}

func New(dir string) *Generator {
	return &Generator{Dir: dir}
}

// Generate writes the receipt for a period and returns the file path. The
// file name is derived from the period bounds, so regenerating a period
// overwrites its previous receipt.
func (g *Generator) Generate(summary workday.PeriodSummary, records []workday.Record) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(g.Dir, fmt.Sprintf("receipt-%s-%s.pdf", summary.Start, summary.End))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Wage receipt")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", summary.Start, summary.End))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(24, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(24, 7, "Shift", "1", 0, "", false, 0, "")
	pdf.CellFormat(18, 7, "Extras", "1", 0, "", false, 0, "")
	pdf.CellFormat(18, 7, "Late", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 7, "Gross", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Net", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, record := range records {
		late := fmt.Sprintf("%d min", record.LateMinutes)
		if record.AbsentDueToLateness {
			late = "absent"
		}
		pdf.CellFormat(24, 7, record.DateKey, "1", 0, "", false, 0, "")
		pdf.CellFormat(24, 7, string(record.Shift), "1", 0, "", false, 0, "")
		pdf.CellFormat(18, 7, fmt.Sprintf("%d", record.ExtraHours), "1", 0, "", false, 0, "")
		pdf.CellFormat(18, 7, late, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", record.GrossFinal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", record.NetPayable), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Days worked: %d", summary.DaysWorked))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Absences: %d (%s)", summary.AbsenceCount, summary.PresenceImpact))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total gross: %.2f", summary.TotalGross))
	pdf.Ln(7)
	if summary.SecondFortnight {
		pdf.Cell(0, 8, fmt.Sprintf("Non-remunerative supplement: %.2f", summary.NonRemunerative))
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Final total: %.2f", summary.FinalTotal))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net payable: %.2f", summary.TotalNetPayable))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
