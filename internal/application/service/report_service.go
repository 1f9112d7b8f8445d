package service

import "github.com/rajtraders/cashmemo-api/pkg/money"

// DailySummary aggregates one calendar day of sales.
type DailySummary struct {
	Date      string  `json:"date"`
	MemoCount int     `json:"memoCount"`
	Total     float64 `json:"total"`
}

// ReportService computes read-only aggregations over the ledger.
type ReportService struct {
	ledger *LedgerService
}

// NewReportService creates a new report service
func NewReportService(ledger *LedgerService) *ReportService {
	return &ReportService{ledger: ledger}
}

// Daily returns the memo count and sales total for the given memo date.
func (s *ReportService) Daily(date string) DailySummary {
	summary := DailySummary{Date: date}
	for _, m := range s.ledger.All() {
		if m.Date != date {
			continue
		}
		summary.MemoCount++
		summary.Total += m.Total
	}
	summary.Total = money.Round2(summary.Total)
	return summary
}
