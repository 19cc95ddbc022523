package in

import (
	"context"

	"courtdesk/internal/modules/translation/dto"
)

type Usecase interface {
	Translate(ctx context.Context, input dto.TranslateInput) (dto.TranslateOutput, error)
	Languages(ctx context.Context) ([]dto.LanguageOutput, error)
}
