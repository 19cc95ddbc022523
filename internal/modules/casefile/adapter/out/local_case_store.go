package out

import (
	"context"

	"courtdesk/internal/modules/casefile/domain"
	casefileout "courtdesk/internal/modules/casefile/port/out"
	"courtdesk/internal/platform/localstore"
)

type LocalCaseStore struct {
	store *localstore.Store
}

func NewLocalCaseStore(store *localstore.Store) casefileout.CaseStore {
	return &LocalCaseStore{store: store}
}

func (s *LocalCaseStore) Load(_ context.Context) ([]domain.Case, bool, error) {
	return localstore.LoadList[domain.Case](s.store, localstore.KeyCases)
}

func (s *LocalCaseStore) Save(_ context.Context, cases []domain.Case) error {
	return localstore.SaveList(s.store, localstore.KeyCases, cases)
}
