package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
	"github.com/rajtraders/cashmemo-api/internal/domain/repository"
	"github.com/rajtraders/cashmemo-api/pkg/apperror"
)

// CustomerRecord is the directory entry returned by a mobile-number lookup.
type CustomerRecord struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// LedgerService owns the in-memory ledger of saved memos and the two views
// derived from it: the customer directory (mobile -> latest name/address) and
// the product suggestion index (every distinct description ever sold). Both
// views are recomputed synchronously after every ledger change, so readers
// never observe the ledger and a stale view at the same time.
type LedgerService struct {
	mu   sync.RWMutex
	repo repository.LedgerRepository

	memos     []entity.Memo
	directory map[string]CustomerRecord
	products  []string
}

// NewLedgerService creates a ledger service backed by the given repository.
func NewLedgerService(repo repository.LedgerRepository) *LedgerService {
	return &LedgerService{
		repo:      repo,
		memos:     []entity.Memo{},
		directory: map[string]CustomerRecord{},
		products:  []string{},
	}
}

// Load reads the persisted ledger into memory and builds the derived views.
// A corrupt document error from the repository is passed through untouched;
// the store never fabricates an empty ledger over unreadable data.
func (s *LedgerService) Load(ctx context.Context) error {
	memos, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.memos = memos
	s.recomputeViews()
	return nil
}

// Append validates the memo, assigns a fresh ID if it has none, appends it to
// the ledger and persists the full sequence before returning. If the durable
// write fails, the in-memory ledger is rolled back to its pre-append state so
// memory and storage never diverge.
func (s *LedgerService) Append(ctx context.Context, memo entity.Memo) (entity.Memo, error) {
	if fieldErrs := validateMemoFields(memo.Date, memo.CustomerName, memo.CustomerAddress, memo.CustomerMobile, len(memo.LineItems)); len(fieldErrs) > 0 {
		return entity.Memo{}, apperror.NewValidationError(fieldErrs)
	}

	if memo.ID == uuid.Nil {
		memo.ID = uuid.New()
	}
	if memo.CreatedAt.IsZero() {
		memo.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.memos = append(s.memos, memo)
	if err := s.repo.Save(ctx, s.memos); err != nil {
		s.memos = s.memos[:len(s.memos)-1]
		return entity.Memo{}, apperror.NewStorageError("Memo was not saved: " + err.Error())
	}

	s.recomputeViews()
	return memo, nil
}

// All returns a read-only snapshot of the ledger in save order.
func (s *LedgerService) All() []entity.Memo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.Memo, len(s.memos))
	copy(snapshot, s.memos)
	return snapshot
}

// Get returns one committed memo by ID.
func (s *LedgerService) Get(id uuid.UUID) (entity.Memo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.memos {
		if s.memos[i].ID == id {
			return s.memos[i], true
		}
	}
	return entity.Memo{}, false
}

// Lookup returns the name and address last recorded for a mobile number.
// Tie-break rule: the most recently saved memo wins, so a returning
// customer's latest address is the one suggested.
func (s *LedgerService) Lookup(mobile string) (CustomerRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.directory[mobile]
	return rec, ok
}

// Suggestions returns every distinct non-empty product description in the
// ledger, sorted for stable output. Duplicates are collapsed; the UI filters
// against partial input itself.
func (s *LedgerService) Suggestions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.products))
	copy(out, s.products)
	return out
}

// recomputeViews rebuilds the customer directory and product index from the
// current memo sequence. Caller must hold the write lock. Iterating in save
// order and overwriting directory entries implements most-recent-wins.
func (s *LedgerService) recomputeViews() {
	directory := make(map[string]CustomerRecord, len(s.memos))
	seen := map[string]struct{}{}
	products := []string{}

	for _, m := range s.memos {
		if m.CustomerMobile != "" {
			directory[m.CustomerMobile] = CustomerRecord{
				Name:    m.CustomerName,
				Address: m.CustomerAddress,
			}
		}
		for _, item := range m.LineItems {
			if item.Description == "" {
				continue
			}
			if _, dup := seen[item.Description]; dup {
				continue
			}
			seen[item.Description] = struct{}{}
			products = append(products, item.Description)
		}
	}
	sort.Strings(products)

	s.directory = directory
	s.products = products
}

// validateMemoFields checks the commit rule shared by the draft controller
// and the ledger store: all customer fields present and at least one item.
func validateMemoFields(date, name, address, mobile string, itemCount int) []apperror.FieldError {
	var fieldErrs []apperror.FieldError
	if strings.TrimSpace(date) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "date", Message: "Date is required"})
	}
	if strings.TrimSpace(name) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	if strings.TrimSpace(address) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customerAddress", Message: "Customer address is required"})
	}
	if strings.TrimSpace(mobile) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customerMobile", Message: "Customer mobile is required"})
	}
	if itemCount == 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "lineItems", Message: "At least one line item is required"})
	}
	return fieldErrs
}
