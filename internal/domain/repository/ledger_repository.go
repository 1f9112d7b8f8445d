package repository

import (
	"context"

	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
)

// LedgerRepository defines the interface for durable ledger storage.
// The ledger is persisted as one self-describing document holding the full
// ordered memo sequence; Save must replace it atomically so a crashed write
// never leaves a truncated document for the next Load.
type LedgerRepository interface {
	// Load returns the persisted memo sequence in stored order. A missing
	// document yields an empty ledger, not an error; an unreadable document
	// yields an error wrapping ErrCorrupted.
	Load(ctx context.Context) ([]entity.Memo, error)
	// Save atomically replaces the durable document with the given sequence.
	Save(ctx context.Context, memos []entity.Memo) error
}
