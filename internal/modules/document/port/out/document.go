package out

import (
	"context"

	"courtdesk/internal/modules/document/domain"
)

type DocumentStore interface {
	Load(ctx context.Context) (docs []domain.Document, found bool, err error)
	Save(ctx context.Context, docs []domain.Document) error
}
