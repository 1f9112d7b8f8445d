package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
)

func sampleMemos() []entity.Memo {
	return []entity.Memo{
		{
			ID:              uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Date:            "2024-01-01",
			CustomerName:    "Karim",
			CustomerAddress: "Mirpur 10, Dhaka",
			CustomerMobile:  "01711111111",
			LineItems: []entity.LineItem{
				{Description: "Pen", Quantity: "2", Rate: "5", Amount: 10},
				{Description: "Notebook", Quantity: "1", Rate: "45.5", Amount: 45.5},
			},
			Total:     55.5,
			CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:              uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Date:            "2024-01-02",
			CustomerName:    "Rahim",
			CustomerAddress: "Uttara, Dhaka",
			CustomerMobile:  "01722222222",
			LineItems: []entity.LineItem{
				{Description: "Pencil", Quantity: "10", Rate: "3", Amount: 30},
			},
			Total:     30,
			CreatedAt: time.Date(2024, 1, 2, 11, 30, 0, 0, time.UTC),
		},
	}
}

func TestLoad_MissingFileReturnsEmptyLedger(t *testing.T) {
	repo := NewFileLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))

	memos, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(memos) != 0 {
		t.Errorf("Load() returned %d memos, want 0", len(memos))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewFileLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))
	want := sampleMemos()

	if err := repo.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "ledger.json")
	repo := NewFileLedgerRepository(path)

	if err := repo.Save(context.Background(), sampleMemos()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("ledger file not created: %v", err)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileLedgerRepository(filepath.Join(dir, "ledger.json"))

	if err := repo.Save(context.Background(), sampleMemos()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("temp file %q left behind after Save", e.Name())
		}
	}
}

func TestLoad_CorruptDocumentSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, []byte(`{"memos": [truncated`), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := NewFileLedgerRepository(path)

	_, err := repo.Load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, want ErrCorrupted")
	}
	if !errors.Is(err, ErrCorrupted) {
		t.Errorf("Load() error = %v, want ErrCorrupted", err)
	}
}

func TestLoad_MissingFieldsDefaultToZeroValues(t *testing.T) {
	// An older document without createdAt, total or lineItems must still load.
	doc := `{"memos": [{"id": "33333333-3333-3333-3333-333333333333", "date": "2023-06-01", "customerName": "Old"}]}`
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := NewFileLedgerRepository(path)

	memos, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(memos) != 1 {
		t.Fatalf("Load() returned %d memos, want 1", len(memos))
	}
	m := memos[0]
	if m.CustomerName != "Old" || m.Total != 0 || len(m.LineItems) != 0 || m.CustomerMobile != "" {
		t.Errorf("unexpected defaults: %+v", m)
	}
}

func TestSave_ReplacesPreviousDocument(t *testing.T) {
	repo := NewFileLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))
	ctx := context.Background()

	first := sampleMemos()[:1]
	if err := repo.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := sampleMemos()
	if err := repo.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("Load() returned %d memos, want 2", len(got))
	}
}
