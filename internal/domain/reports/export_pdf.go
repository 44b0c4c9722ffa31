package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"sipeka/internal/domain/evaluation"
)

func buildResultsPDF(results []evaluation.Result) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(60, 10, "Riwayat Penilaian Kinerja")
	pdf.Ln(12)

	headers := []string{"Pegawai", "NIP", "Bidang", "Penilai", "Periode", "Total", "Rata-rata", "Tanggal"}
	widths := []float64{50, 32, 40, 40, 30, 22, 22, 30}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, result := range results {
		cells := []string{
			result.EmployeeName,
			result.EmployeeNIP,
			result.UnitName,
			result.EvaluatorName,
			result.Period,
			fmt.Sprintf("%.0f", result.Total),
			fmt.Sprintf("%.2f", result.Mean),
			result.SubmittedAt.Format("2006-01-02"),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
