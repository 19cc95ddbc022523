package out

import (
	"context"

	"courtdesk/internal/modules/document/domain"
	documentout "courtdesk/internal/modules/document/port/out"
	"courtdesk/internal/platform/localstore"
)

type LocalDocumentStore struct {
	store *localstore.Store
}

func NewLocalDocumentStore(store *localstore.Store) documentout.DocumentStore {
	return &LocalDocumentStore{store: store}
}

func (s *LocalDocumentStore) Load(_ context.Context) ([]domain.Document, bool, error) {
	return localstore.LoadList[domain.Document](s.store, localstore.KeyDocuments)
}

func (s *LocalDocumentStore) Save(_ context.Context, docs []domain.Document) error {
	return localstore.SaveList(s.store, localstore.KeyDocuments, docs)
}
