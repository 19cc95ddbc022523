package in

import (
	"context"

	"courtdesk/internal/modules/translation/dto"
	translationin "courtdesk/internal/modules/translation/port/in"
)

type CLIHandler struct {
	usecase translationin.Usecase
}

func NewCLIHandler(usecase translationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Translate(ctx context.Context, text, language string) (dto.TranslateOutput, error) {
	return h.usecase.Translate(ctx, dto.TranslateInput{Text: text, Language: language})
}

func (h CLIHandler) Languages(ctx context.Context) ([]dto.LanguageOutput, error) {
	return h.usecase.Languages(ctx)
}
