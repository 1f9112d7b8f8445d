package service

import (
	"context"
	"sync"

	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
	"github.com/rajtraders/cashmemo-api/pkg/apperror"
	"github.com/rajtraders/cashmemo-api/pkg/money"
)

// DraftState describes where the single in-progress memo is in its lifecycle.
type DraftState string

const (
	DraftStateEmpty   DraftState = "EMPTY"
	DraftStateEditing DraftState = "EDITING"
)

// Header field names accepted by SetField.
const (
	FieldDate            = "date"
	FieldCustomerName    = "customerName"
	FieldCustomerAddress = "customerAddress"
	FieldCustomerMobile  = "customerMobile"
)

// Line item field names accepted by UpdateLineItem.
const (
	ItemFieldDescription = "description"
	ItemFieldQuantity    = "quantity"
	ItemFieldRate        = "rate"
)

// DraftService holds the one memo under composition. Field edits mutate the
// draft in place, amounts are recomputed on every item edit, and a successful
// Save freezes the draft into an immutable memo, appends it to the ledger and
// resets the draft. A rejected Save leaves the draft exactly as it was.
type DraftService struct {
	mu     sync.Mutex
	ledger *LedgerService

	draft entity.MemoDraft

	// Values written by the last customer lookup. A later lookup may only
	// overwrite a field that is empty or still carries its auto-filled
	// value; anything the user typed by hand is never clobbered.
	autofilledName    string
	autofilledAddress string
}

// NewDraftService creates a draft controller bound to the ledger store.
func NewDraftService(ledger *LedgerService) *DraftService {
	return &DraftService{ledger: ledger}
}

// State reports the draft lifecycle state.
func (s *DraftService) State() DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *DraftService) stateLocked() DraftState {
	if s.draft.IsEmpty() {
		return DraftStateEmpty
	}
	return DraftStateEditing
}

// Current returns a snapshot of the draft, its live total and its state.
func (s *DraftService) Current() (entity.MemoDraft, float64, DraftState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.draft
	snapshot.LineItems = s.draft.CloneItems()
	return snapshot, s.totalLocked(), s.stateLocked()
}

// SetField updates one draft header field. Editing the mobile number runs a
// customer-directory lookup; when the number is known, name and address are
// auto-filled under the no-clobber guard. Returns whether autofill fired.
func (s *DraftService) SetField(field, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldDate:
		s.draft.Date = value
	case FieldCustomerName:
		s.draft.CustomerName = value
	case FieldCustomerAddress:
		s.draft.CustomerAddress = value
	case FieldCustomerMobile:
		s.draft.CustomerMobile = value
		return s.autofillLocked(value), nil
	default:
		return false, apperror.NewBadRequestError("Unknown draft field: " + field)
	}
	return false, nil
}

// autofillLocked fills name/address from the customer directory. A field is
// only written if it is empty or still holds the previous auto-filled value.
func (s *DraftService) autofillLocked(mobile string) bool {
	rec, found := s.ledger.Lookup(mobile)
	if !found {
		return false
	}

	filled := false
	if s.draft.CustomerName == "" || s.draft.CustomerName == s.autofilledName {
		s.draft.CustomerName = rec.Name
		s.autofilledName = rec.Name
		filled = true
	}
	if s.draft.CustomerAddress == "" || s.draft.CustomerAddress == s.autofilledAddress {
		s.draft.CustomerAddress = rec.Address
		s.autofilledAddress = rec.Address
		filled = true
	}
	return filled
}

// AddLineItem appends a blank line item and returns its index. An empty draft
// transitions to EDITING.
func (s *DraftService) AddLineItem() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.LineItems = append(s.draft.LineItems, entity.LineItem{})
	return len(s.draft.LineItems) - 1
}

// UpdateLineItem mutates one field of one line item and recomputes that
// item's amount. An index that does not refer to an existing item is an error
// and leaves the draft untouched.
func (s *DraftService) UpdateLineItem(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.draft.LineItems) {
		return apperror.NewNotFoundError("Line item")
	}

	item := &s.draft.LineItems[index]
	switch field {
	case ItemFieldDescription:
		item.Description = value
	case ItemFieldQuantity:
		item.Quantity = value
	case ItemFieldRate:
		item.Rate = value
	default:
		return apperror.NewBadRequestError("Unknown line item field: " + field)
	}

	item.Amount = money.ComputeAmount(item.Quantity, item.Rate)
	return nil
}

// ComputeTotal returns the sum of all current line-item amounts. It is always
// available and reflects live edits.
func (s *DraftService) ComputeTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *DraftService) totalLocked() float64 {
	var sum float64
	for _, item := range s.draft.LineItems {
		sum += item.Amount
	}
	return money.Round2(sum)
}

// Save validates the draft and commits it to the ledger. On success the
// returned memo carries the frozen total and the draft resets to EMPTY. On
// validation failure or a persistence failure the draft is left unchanged so
// the user can correct and retry; nothing is ever partially saved.
func (s *DraftService) Save(ctx context.Context) (entity.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fieldErrs := validateMemoFields(s.draft.Date, s.draft.CustomerName, s.draft.CustomerAddress, s.draft.CustomerMobile, len(s.draft.LineItems)); len(fieldErrs) > 0 {
		return entity.Memo{}, apperror.NewValidationError(fieldErrs)
	}

	memo := entity.Memo{
		Date:            s.draft.Date,
		CustomerName:    s.draft.CustomerName,
		CustomerAddress: s.draft.CustomerAddress,
		CustomerMobile:  s.draft.CustomerMobile,
		LineItems:       s.draft.CloneItems(),
		Total:           s.totalLocked(),
	}

	committed, err := s.ledger.Append(ctx, memo)
	if err != nil {
		return entity.Memo{}, err
	}

	s.resetLocked()
	return committed, nil
}

// Clear abandons the draft and returns to EMPTY.
func (s *DraftService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *DraftService) resetLocked() {
	s.draft = entity.MemoDraft{}
	s.autofilledName = ""
	s.autofilledAddress = ""
}
