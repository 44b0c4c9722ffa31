package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"sipeka/internal/domain/evaluation"
)

const resultsSheet = "Riwayat Penilaian"

func buildResultsWorkbook(results []evaluation.Result) ([]byte, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Pegawai", "NIP", "Bidang", "Penilai", "Periode", "Total Nilai", "Rata-rata", "Tanggal"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(resultsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	end, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(resultsSheet, "A1", end, bold)
	_ = f.AutoFilter(resultsSheet, "A1:"+end, nil)

	for rowIdx, result := range results {
		values := []any{
			result.EmployeeName,
			result.EmployeeNIP,
			result.UnitName,
			result.EvaluatorName,
			result.Period,
			result.Total,
			result.Mean,
			result.SubmittedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(resultsSheet, cell, value); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
