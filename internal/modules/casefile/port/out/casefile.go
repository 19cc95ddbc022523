package out

import (
	"context"

	"courtdesk/internal/modules/casefile/domain"
)

// CaseStore persists the case list under one storage key. found is false
// when the key has never been written.
type CaseStore interface {
	Load(ctx context.Context) (cases []domain.Case, found bool, err error)
	Save(ctx context.Context, cases []domain.Case) error
}
