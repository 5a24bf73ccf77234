package export

import (
	"bytes"

	"github.com/phpdave11/gofpdf"
)

var colWidths = []float64{24, 74, 28, 28, 28}

// RenderPDF draws the statement as an A4 ledger table and returns the
// document bytes.
func RenderPDF(st Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Ledger Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Account holder: "+st.HolderName)
	pdf.Ln(5)
	pdf.Cell(0, 6, "Generated: "+st.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetTextColor(20, 20, 20)
	drawHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	for _, row := range st.Rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			drawHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(30, 30, 30)
		}
		pdf.CellFormat(colWidths[0], 8, row.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, row.Particulars, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, row.Debit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, row.Credit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 8, row.Balance, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(248, 248, 248)
	footerWidth := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3]
	pdf.CellFormat(footerWidth, 9, "Closing balance", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[4], 9, st.ClosingBalance.String(), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(colWidths[0], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[1], 8, "PARTICULARS", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[2], 8, "DEBIT", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[3], 8, "CREDIT", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[4], 8, "BALANCE", "1", 1, "C", true, 0, "")
}
