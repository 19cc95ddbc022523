package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	casefileout "courtdesk/internal/modules/casefile/adapter/out"
	"courtdesk/internal/modules/casefile/domain"
	"courtdesk/internal/modules/casefile/dto"
	"courtdesk/internal/modules/casefile/service"
	"courtdesk/internal/modules/casefile/usecase"
	"courtdesk/internal/platform/clock"
	apperrors "courtdesk/internal/platform/errors"
	"courtdesk/internal/platform/id"
	"courtdesk/internal/platform/localstore"
)

var fixedNow = clock.Func(func() time.Time { return time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC) })

func openStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "courtdesk.bolt"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestFirstListPersistsSeed(t *testing.T) {
	t.Parallel()
	store := openStore(t)
	uc := usecase.NewInteractor(service.NewCaseService(fixedNow, id.UUID{}, casefileout.NewLocalCaseStore(store), nil))

	if _, found, _ := store.Get(localstore.KeyCases); found {
		t.Fatalf("cases key should start absent")
	}
	cases, err := uc.ListCases(context.Background(), dto.ListCasesInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cases) != len(domain.SeedCases()) {
		t.Fatalf("expected seed list, got %d", len(cases))
	}
	persisted, found, err := localstore.LoadList[domain.Case](store, localstore.KeyCases)
	if err != nil || !found || len(persisted) != len(cases) {
		t.Fatalf("seed should be written on first read: found=%v n=%d err=%v", found, len(persisted), err)
	}

	active, err := uc.ListCases(context.Background(), dto.ListCasesInput{Status: "active"})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	for _, c := range active {
		if c.Status != "active" {
			t.Fatalf("filter leaked %+v", c)
		}
	}
}

func TestCreateUpdateRemove(t *testing.T) {
	t.Parallel()
	store := openStore(t)
	uc := usecase.NewInteractor(service.NewCaseService(fixedNow, id.UUID{}, casefileout.NewLocalCaseStore(store), nil))
	ctx := context.Background()

	created, err := uc.CreateCase(ctx, dto.CreateCaseInput{CaseNumber: "2025-CR-999", Title: "State vs. Roe", Type: "Criminal", Judge: "Hon. Ada Grey"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != "active" || created.Priority != "medium" || created.CreatedAt != "2025-03-04" || created.ID == "" {
		t.Fatalf("unexpected created case %+v", created)
	}
	if _, err := uc.CreateCase(ctx, dto.CreateCaseInput{CaseNumber: "2025-cr-999", Title: "Dup", Type: "civil"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("duplicate number should be rejected, got %v", err)
	}
	if _, err := uc.CreateCase(ctx, dto.CreateCaseInput{CaseNumber: "2025-XX-1", Title: "Bad", Type: "maritime"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("bad type should be rejected, got %v", err)
	}

	updated, err := uc.UpdateStatus(ctx, dto.UpdateStatusInput{CaseNumber: "2025-CR-999", Status: "closed"})
	if err != nil || updated.Status != "closed" {
		t.Fatalf("update: %+v %v", updated, err)
	}
	if _, err := uc.UpdateStatus(ctx, dto.UpdateStatusInput{CaseNumber: "nope", Status: "closed"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	reopened := usecase.NewInteractor(service.NewCaseService(fixedNow, id.UUID{}, casefileout.NewLocalCaseStore(store), nil))
	got, err := reopened.GetCase(ctx, "2025-CR-999")
	if err != nil || got.Status != "closed" {
		t.Fatalf("status should persist, got %+v %v", got, err)
	}

	removed, err := uc.RemoveCase(ctx, "2025-CR-999")
	if err != nil || !removed {
		t.Fatalf("remove: %v %v", removed, err)
	}
	removed, _ = uc.RemoveCase(ctx, "2025-CR-999")
	if removed {
		t.Fatalf("second remove should report false")
	}
}

type brokenStore struct{ saves int }

func (b *brokenStore) Load(context.Context) ([]domain.Case, bool, error) {
	return nil, true, errors.New("decode courtdesk.cases: invalid character")
}

func (b *brokenStore) Save(context.Context, []domain.Case) error {
	b.saves++
	return errors.New("read-only")
}

func TestStorageFailuresDegrade(t *testing.T) {
	t.Parallel()
	store := &brokenStore{}
	uc := usecase.NewInteractor(service.NewCaseService(fixedNow, id.UUID{}, store, nil))
	ctx := context.Background()

	cases, err := uc.ListCases(ctx, dto.ListCasesInput{})
	if err != nil || len(cases) != 0 {
		t.Fatalf("corrupt storage should list empty, got %d %v", len(cases), err)
	}
	if _, err := uc.CreateCase(ctx, dto.CreateCaseInput{CaseNumber: "2025-CV-1", Title: "A vs. B", Type: "civil"}); err != nil {
		t.Fatalf("write failure must not surface: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected one save attempt, got %d", store.saves)
	}
}
