// Package pdf renders printable cash memos.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
	"github.com/rajtraders/cashmemo-api/pkg/money"
	"github.com/rajtraders/cashmemo-api/pkg/words"
)

// Business holds the header block printed on every memo.
type Business struct {
	Name    string
	Address string
}

// RenderMemo renders one committed memo as a PDF document.
func RenderMemo(biz Business, m entity.Memo) ([]byte, error) {
	memoNo := m.ID.String()
	if len(memoNo) >= 8 {
		memoNo = memoNo[:8]
	}
	return render(biz, "Cash Memo No: "+memoNo, m.Date, m.CustomerName, m.CustomerAddress, m.CustomerMobile, m.LineItems, m.Total)
}

// RenderDraft renders the live draft with its running total, for print preview.
func RenderDraft(biz Business, d entity.MemoDraft, total float64) ([]byte, error) {
	return render(biz, "Cash Memo (Draft)", d.Date, d.CustomerName, d.CustomerAddress, d.CustomerMobile, d.LineItems, total)
}

func render(biz Business, title, date, name, address, mobile string, items []entity.LineItem, total float64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Business header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 9, biz.Name, "", 1, "C", false, 0, "")
	if biz.Address != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 5, biz.Address, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")

	// Customer block
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Date: "+date, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Name: "+name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Address: "+address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Mobile: "+mobile, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Quantity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range items {
		pdf.CellFormat(90, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, item.Quantity, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, item.Rate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, money.Format(item.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(145, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, money.Format(total), "1", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 6, "In words: "+words.InWords(total), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render memo pdf: %w", err)
	}
	return buf.Bytes(), nil
}
