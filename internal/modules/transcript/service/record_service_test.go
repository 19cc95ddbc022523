package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"courtdesk/internal/modules/transcript/domain"
	"courtdesk/internal/modules/transcript/service"
	apperrors "courtdesk/internal/platform/errors"
)

type seqID struct{ n int }

func (g *seqID) New() string {
	g.n++
	return fmt.Sprintf("rec-%d", g.n)
}

type memStore struct {
	records []domain.Record
	found   bool
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func (m *memStore) Load(context.Context) ([]domain.Record, bool, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	return append([]domain.Record(nil), m.records...), m.found, nil
}

func (m *memStore) Save(_ context.Context, records []domain.Record) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append([]domain.Record(nil), records...)
	m.found = true
	return nil
}

type fakeProjector struct {
	upserts []string
	deletes []string
	resets  int
}

func (f *fakeProjector) Reset(context.Context) error { f.resets++; return nil }
func (f *fakeProjector) Upsert(_ context.Context, r domain.Record, _ int) error {
	f.upserts = append(f.upserts, r.ID)
	return nil
}
func (f *fakeProjector) Delete(_ context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}
func (f *fakeProjector) Search(context.Context, string, int) ([]string, error) { return nil, nil }

func record(caseNumber, date string) domain.Record {
	return domain.Record{
		CaseNumber: caseNumber,
		Date:       date,
		Status:     domain.StatusCompleted,
		Entries:    []domain.Entry{{ID: "e1", Speaker: domain.SpeakerJudge, Text: "Order in the court.", Confidence: 90}},
	}
}

func TestLoadFailureIsTreatedAsEmpty(t *testing.T) {
	t.Parallel()
	store := &memStore{loadErr: errors.New("unexpected end of JSON input")}
	svc := service.NewRecordService(&seqID{}, store, nil, nil, nil)

	if got := svc.LoadAll(context.Background()); len(got) != 0 {
		t.Fatalf("corrupt storage should read as empty, got %d records", len(got))
	}
	if _, err := svc.Append(context.Background(), record("2025-CR-001", "2025-03-01")); err != nil {
		t.Fatalf("append after load failure: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("expected storage to be rewritten with one record, got %d", len(store.records))
	}
}

func TestSaveFailureIsSwallowedAndCacheKept(t *testing.T) {
	t.Parallel()
	store := &memStore{saveErr: errors.New("disk full")}
	svc := service.NewRecordService(&seqID{}, store, nil, nil, nil)
	ctx := context.Background()

	saved, err := svc.Append(ctx, record("2025-CR-001", "2025-03-01"))
	if err != nil {
		t.Fatalf("write failures must not surface, got %v", err)
	}
	if got := svc.LoadAll(ctx); len(got) != 1 || got[0].ID != saved.ID {
		t.Fatalf("cache should hold the record, got %+v", got)
	}
	if store.saves != 1 {
		t.Fatalf("expected one save attempt, got %d", store.saves)
	}
}

func TestLoadsOnceAndMirrorsProjection(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	projector := &fakeProjector{}
	svc := service.NewRecordService(&seqID{}, store, projector, nil, nil)
	ctx := context.Background()

	a, _ := svc.Append(ctx, record("2025-CR-001", "2025-03-01"))
	b, _ := svc.Append(ctx, record("2025-CV-002", "2025-03-02"))
	svc.LoadAll(ctx)
	svc.LoadAll(ctx)
	if store.loads != 1 {
		t.Fatalf("expected a single storage read, got %d", store.loads)
	}
	if !svc.Remove(ctx, a.ID) {
		t.Fatalf("remove should succeed")
	}
	if len(projector.upserts) != 2 || len(projector.deletes) != 1 || projector.deletes[0] != a.ID {
		t.Fatalf("unexpected projection calls %+v", projector)
	}
	if err := svc.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 || projector.upserts[len(projector.upserts)-1] != b.ID {
		t.Fatalf("reindex should reset and replay, got %+v", projector)
	}
}

func TestListSortsByDateAndFiltersCase(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	svc := service.NewRecordService(&seqID{}, store, nil, nil, nil)
	ctx := context.Background()

	older, _ := svc.Append(ctx, record("2025-CR-001", "2025-01-01"))
	sameDayFirst, _ := svc.Append(ctx, record("2025-CV-002", "2025-02-01"))
	sameDaySecond, _ := svc.Append(ctx, record("2025-CR-003", "2025-02-01"))

	list := svc.List(ctx, "")
	if len(list) != 3 || list[0].ID != sameDaySecond.ID || list[1].ID != sameDayFirst.ID || list[2].ID != older.ID {
		t.Fatalf("unexpected order %+v", list)
	}
	criminal := svc.List(ctx, "2025-cr")
	if len(criminal) != 2 {
		t.Fatalf("expected two criminal records, got %d", len(criminal))
	}
}

func TestListDoesNotDependOnProjection(t *testing.T) {
	t.Parallel()
	projector := &fakeProjector{}
	svc := service.NewRecordService(&seqID{}, &memStore{}, projector, nil, nil)
	ctx := context.Background()

	seeds := domain.SeedRecords()
	if got := svc.List(ctx, ""); len(got) != len(seeds) {
		t.Fatalf("seed list should not need an index, got %d want %d", len(got), len(seeds))
	}
	if len(projector.upserts) != 0 {
		t.Fatalf("listing must not write the projection, got %v", projector.upserts)
	}

	a, _ := svc.Append(ctx, record("2025-CR-001", "2025-04-01"))
	b, _ := svc.Append(ctx, record("2025-CR-002", "2025-04-01"))
	svc.Remove(ctx, a.ID)
	list := svc.List(ctx, "2025-cr")
	if len(list) != 1 || list[0].ID != b.ID {
		t.Fatalf("list after remove = %+v", list)
	}
}

func TestToggleBookmarkOnSeedOnlyIsNotFound(t *testing.T) {
	t.Parallel()
	svc := service.NewRecordService(&seqID{}, &memStore{}, nil, nil, nil)
	if _, err := svc.ToggleBookmark(context.Background(), "seed-rec-1", "seed-rec-1-1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCallerCannotMutateCache(t *testing.T) {
	t.Parallel()
	svc := service.NewRecordService(&seqID{}, &memStore{}, nil, nil, nil)
	ctx := context.Background()
	saved, _ := svc.Append(ctx, record("2025-CR-001", "2025-01-01"))

	got := svc.LoadAll(ctx)
	got[0].Entries[0].Text = "tampered"
	again, err := svc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Entries[0].Text != "Order in the court." {
		t.Fatalf("cache was mutated through a returned slice")
	}
}
