package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/rajtraders/cashmemo-api/internal/domain/entity"
	"github.com/rajtraders/cashmemo-api/pkg/apperror"
)

// stubRepo is an in-memory LedgerRepository for service tests.
type stubRepo struct {
	memos   []entity.Memo
	loadErr error
	saveErr error
	saves   int
}

func (r *stubRepo) Load(ctx context.Context) ([]entity.Memo, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]entity.Memo, len(r.memos))
	copy(out, r.memos)
	return out, nil
}

func (r *stubRepo) Save(ctx context.Context, memos []entity.Memo) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.memos = make([]entity.Memo, len(memos))
	copy(r.memos, memos)
	return nil
}

func validMemo(mobile, name, address string, items ...entity.LineItem) entity.Memo {
	if len(items) == 0 {
		items = []entity.LineItem{{Description: "Pen", Quantity: "2", Rate: "5", Amount: 10}}
	}
	return entity.Memo{
		Date:            "2024-01-01",
		CustomerName:    name,
		CustomerAddress: address,
		CustomerMobile:  mobile,
		LineItems:       items,
		Total:           10,
	}
}

func TestAppend_AssignsIDAndPersists(t *testing.T) {
	repo := &stubRepo{}
	svc := NewLedgerService(repo)
	ctx := context.Background()

	committed, err := svc.Append(ctx, validMemo("01711", "Karim", "Dhaka"))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if committed.ID == uuid.Nil {
		t.Error("Append() did not assign an ID")
	}
	if committed.CreatedAt.IsZero() {
		t.Error("Append() did not stamp CreatedAt")
	}
	if len(svc.All()) != 1 {
		t.Errorf("ledger length = %d, want 1", len(svc.All()))
	}
	if len(repo.memos) != 1 {
		t.Errorf("persisted length = %d, want 1", len(repo.memos))
	}
}

func TestAppend_KeepsCallerAssignedID(t *testing.T) {
	svc := NewLedgerService(&stubRepo{})
	memo := validMemo("01711", "Karim", "Dhaka")
	memo.ID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

	committed, err := svc.Append(context.Background(), memo)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if committed.ID != memo.ID {
		t.Errorf("Append() replaced ID %s with %s", memo.ID, committed.ID)
	}
}

func TestAppend_RejectsMalformedMemo(t *testing.T) {
	repo := &stubRepo{}
	svc := NewLedgerService(repo)

	memo := validMemo("", "Karim", "Dhaka") // missing mobile
	_, err := svc.Append(context.Background(), memo)
	if err == nil {
		t.Fatal("Append() error = nil, want validation error")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Errorf("Append() code = %d, want 422", appErr.Code)
	}
	if len(svc.All()) != 0 {
		t.Errorf("ledger length = %d after rejected append, want 0", len(svc.All()))
	}
	if repo.saves != 0 {
		t.Errorf("repo.Save called %d times for rejected memo, want 0", repo.saves)
	}
}

func TestAppend_RollsBackWhenPersistenceFails(t *testing.T) {
	repo := &stubRepo{saveErr: errors.New("disk full")}
	svc := NewLedgerService(repo)

	_, err := svc.Append(context.Background(), validMemo("01711", "Karim", "Dhaka"))
	if err == nil {
		t.Fatal("Append() error = nil, want storage error")
	}
	if len(svc.All()) != 0 {
		t.Errorf("ledger length = %d after failed persist, want 0 (rolled back)", len(svc.All()))
	}

	// Subsequent append must still work once the disk recovers.
	repo.saveErr = nil
	if _, err := svc.Append(context.Background(), validMemo("01711", "Karim", "Dhaka")); err != nil {
		t.Fatalf("Append() after recovery error = %v", err)
	}
	if len(svc.All()) != 1 {
		t.Errorf("ledger length = %d, want 1", len(svc.All()))
	}
}

func TestLoad_PassesThroughRepositoryError(t *testing.T) {
	wantErr := errors.New("ledger document is corrupted")
	svc := NewLedgerService(&stubRepo{loadErr: wantErr})

	if err := svc.Load(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Load() error = %v, want %v", err, wantErr)
	}
}

func TestLookup_MostRecentlySavedMemoWins(t *testing.T) {
	svc := NewLedgerService(&stubRepo{})
	ctx := context.Background()

	if _, err := svc.Append(ctx, validMemo("0171", "Karim", "Old Town")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Append(ctx, validMemo("0171", "Karim", "New Town")); err != nil {
		t.Fatal(err)
	}

	rec, found := svc.Lookup("0171")
	if !found {
		t.Fatal("Lookup(\"0171\") found = false, want true")
	}
	if rec.Address != "New Town" {
		t.Errorf("Lookup address = %q, want %q (most recently saved wins)", rec.Address, "New Town")
	}
}

func TestLookup_IsIdempotent(t *testing.T) {
	svc := NewLedgerService(&stubRepo{})
	if _, err := svc.Append(context.Background(), validMemo("0171", "Karim", "Dhaka")); err != nil {
		t.Fatal(err)
	}

	first, foundFirst := svc.Lookup("0171")
	second, foundSecond := svc.Lookup("0171")
	if foundFirst != foundSecond || first != second {
		t.Errorf("Lookup not idempotent: (%+v, %v) then (%+v, %v)", first, foundFirst, second, foundSecond)
	}
}

func TestLookup_UnknownMobileNotFound(t *testing.T) {
	svc := NewLedgerService(&stubRepo{})
	if _, found := svc.Lookup("0000"); found {
		t.Error("Lookup of unknown mobile found = true, want false")
	}
}

func TestSuggestions_CollapsesDuplicates(t *testing.T) {
	svc := NewLedgerService(&stubRepo{})
	ctx := context.Background()

	memos := []entity.Memo{
		validMemo("0171", "Karim", "Dhaka", entity.LineItem{Description: "Pen", Quantity: "1", Rate: "5", Amount: 5}),
		validMemo("0172", "Rahim", "Dhaka",
			entity.LineItem{Description: "Pen", Quantity: "2", Rate: "5", Amount: 10},
			entity.LineItem{Description: "Notebook", Quantity: "1", Rate: "45", Amount: 45},
			entity.LineItem{Description: "", Quantity: "1", Rate: "1", Amount: 1}),
	}
	for _, m := range memos {
		if _, err := svc.Append(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	got := svc.Suggestions()
	want := []string{"Notebook", "Pen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions() = %v, want %v", got, want)
	}
}

func TestSuggestions_RebuiltOnLoad(t *testing.T) {
	repo := &stubRepo{memos: []entity.Memo{
		validMemo("0171", "Karim", "Dhaka", entity.LineItem{Description: "Pencil", Quantity: "1", Rate: "3", Amount: 3}),
	}}
	svc := NewLedgerService(repo)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := svc.Suggestions(); !reflect.DeepEqual(got, []string{"Pencil"}) {
		t.Errorf("Suggestions() after Load = %v, want [Pencil]", got)
	}
	if _, found := svc.Lookup("0171"); !found {
		t.Error("Lookup after Load found = false, want true")
	}
}

func TestAll_ReturnsSnapshotNotLiveSlice(t *testing.T) {
	svc := NewLedgerService(&stubRepo{})
	if _, err := svc.Append(context.Background(), validMemo("0171", "Karim", "Dhaka")); err != nil {
		t.Fatal(err)
	}

	snapshot := svc.All()
	snapshot[0].CustomerName = "mutated"
	if svc.All()[0].CustomerName != "Karim" {
		t.Error("mutating All() snapshot changed the ledger")
	}
}
