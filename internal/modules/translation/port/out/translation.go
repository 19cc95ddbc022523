package out

import (
	"context"

	"courtdesk/internal/modules/translation/domain"
)

type DictionaryStore interface {
	Load(ctx context.Context) (domain.Dictionary, error)
}
