package usecase

import (
	"context"

	"courtdesk/internal/modules/translation/domain"
	"courtdesk/internal/modules/translation/dto"
	translationin "courtdesk/internal/modules/translation/port/in"
	"courtdesk/internal/modules/translation/service"
)

type Interactor struct {
	svc *service.TranslationService
}

func NewInteractor(svc *service.TranslationService) translationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Translate(ctx context.Context, input dto.TranslateInput) (dto.TranslateOutput, error) {
	lang, err := domain.ParseLanguage(input.Language)
	if err != nil {
		return dto.TranslateOutput{}, err
	}
	text, matched := i.svc.Translate(ctx, input.Text, lang)
	return dto.TranslateOutput{Text: text, Language: string(lang), Matched: matched}, nil
}

func (i *Interactor) Languages(ctx context.Context) ([]dto.LanguageOutput, error) {
	langs := domain.Supported()
	out := make([]dto.LanguageOutput, 0, len(langs))
	for _, lang := range langs {
		out = append(out, dto.LanguageOutput{Code: string(lang), Name: lang.Name(), Phrases: i.svc.PhraseCount(ctx, lang)})
	}
	return out, nil
}
