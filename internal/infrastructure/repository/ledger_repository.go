package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
)

// ErrCorrupted marks a ledger document that exists but cannot be parsed.
// It is surfaced rather than swallowed so data loss is never invisible;
// the application layer decides whether to stop or offer recovery.
var ErrCorrupted = errors.New("ledger document is corrupted")

// ledgerDocument is the persisted representation: one self-describing JSON
// document holding the full ordered memo sequence. Field names are stable;
// fields absent on load default to zero values so old documents stay readable.
type ledgerDocument struct {
	Memos []entity.Memo `json:"memos"`
}

// FileLedgerRepository stores the ledger as a single JSON document on disk.
type FileLedgerRepository struct {
	path string
}

// NewFileLedgerRepository creates a ledger repository backed by the given file.
func NewFileLedgerRepository(path string) *FileLedgerRepository {
	return &FileLedgerRepository{path: path}
}

// Load reads the persisted ledger. A missing file is an empty ledger, not an
// error. A present but unparsable file returns an error wrapping ErrCorrupted.
func (r *FileLedgerRepository) Load(ctx context.Context) ([]entity.Memo, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Memo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", r.path, err)
	}

	var doc ledgerDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, r.path, err)
	}
	if doc.Memos == nil {
		doc.Memos = []entity.Memo{}
	}
	return doc.Memos, nil
}

// Save atomically replaces the ledger document. The new content is written to
// a temp file in the same directory, synced, then renamed over the old file,
// so a crash mid-write never leaves a truncated document behind.
func (r *FileLedgerRepository) Save(ctx context.Context, memos []entity.Memo) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	raw, err := json.MarshalIndent(ledgerDocument{Memos: memos}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp ledger: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
