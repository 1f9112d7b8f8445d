// Package export produces tabular ledger summaries, one row per memo.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
	"github.com/rajtraders/cashmemo-api/pkg/money"
)

var columns = []string{"Date", "Name", "Mobile", "Address", "Total"}

// BuildWorkbook builds an xlsx workbook with the ledger summary sheet.
func BuildWorkbook(memos []entity.Memo) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Memos"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, h := range columns {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for idx, m := range memos {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), m.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), m.CustomerName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), m.CustomerMobile)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), m.CustomerAddress)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), m.Total)
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 12)

	return f, nil
}

// WriteCSV writes the same summary as CSV.
func WriteCSV(w io.Writer, memos []entity.Memo) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range memos {
		record := []string{
			m.Date,
			m.CustomerName,
			m.CustomerMobile,
			m.CustomerAddress,
			money.Format(m.Total),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
