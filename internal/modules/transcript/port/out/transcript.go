package out

import (
	"context"

	"courtdesk/internal/modules/transcript/domain"
)

// RecordStore persists the whole record list under one storage key.
// found is false when nothing has ever been written.
type RecordStore interface {
	Load(ctx context.Context) (records []domain.Record, found bool, err error)
	Save(ctx context.Context, records []domain.Record) error
}

// RecordIndexProjector mirrors records into a queryable index.
type RecordIndexProjector interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, record domain.Record, position int) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

type RecordExporter interface {
	Export(ctx context.Context, record domain.Record) (string, error)
}

// Translator renders source text into a language code. It never fails.
type Translator interface {
	Translate(ctx context.Context, text, language string) string
}
