package out

import (
	"context"

	"courtdesk/internal/modules/transcript/domain"
	transcriptout "courtdesk/internal/modules/transcript/port/out"
	"courtdesk/internal/platform/localstore"
)

type LocalRecordStore struct {
	store *localstore.Store
}

func NewLocalRecordStore(store *localstore.Store) transcriptout.RecordStore {
	return &LocalRecordStore{store: store}
}

func (s *LocalRecordStore) Load(_ context.Context) ([]domain.Record, bool, error) {
	return localstore.LoadList[domain.Record](s.store, localstore.KeyTranscriptions)
}

func (s *LocalRecordStore) Save(_ context.Context, records []domain.Record) error {
	return localstore.SaveList(s.store, localstore.KeyTranscriptions, records)
}
