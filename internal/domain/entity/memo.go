package entity

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one product row on a memo. Quantity and Rate keep the text the
// user typed so a half-finished entry survives re-editing; Amount is the
// computed value the UI displays.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	Rate        string  `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Memo is a single committed cash-sale record. It is immutable once saved:
// Total is computed at commit time and stored, so historical memos keep their
// value even if the calculation rules change later.
type Memo struct {
	ID              uuid.UUID  `json:"id"`
	Date            string     `json:"date"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress"`
	CustomerMobile  string     `json:"customerMobile"`
	LineItems       []LineItem `json:"lineItems"`
	Total           float64    `json:"total"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// MemoDraft is the single in-progress memo being composed. It has no ID and
// no stored total until it is committed into the ledger.
type MemoDraft struct {
	Date            string     `json:"date"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress"`
	CustomerMobile  string     `json:"customerMobile"`
	LineItems       []LineItem `json:"lineItems"`
}

// CloneItems returns an independent copy of the draft's line items so a
// committed memo never shares slices with the live draft.
func (d *MemoDraft) CloneItems() []LineItem {
	items := make([]LineItem, len(d.LineItems))
	copy(items, d.LineItems)
	return items
}

// IsEmpty reports whether the draft holds no user input at all.
func (d *MemoDraft) IsEmpty() bool {
	return d.Date == "" &&
		d.CustomerName == "" &&
		d.CustomerAddress == "" &&
		d.CustomerMobile == "" &&
		len(d.LineItems) == 0
}
