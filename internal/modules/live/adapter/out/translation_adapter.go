package out

import (
	"context"

	liveout "courtdesk/internal/modules/live/port/out"
	translationdto "courtdesk/internal/modules/translation/dto"
	translationin "courtdesk/internal/modules/translation/port/in"
)

type TranslationAdapter struct {
	translation translationin.Usecase
}

func NewTranslationAdapter(translation translationin.Usecase) liveout.Translator {
	return &TranslationAdapter{translation: translation}
}

func (a *TranslationAdapter) Translate(ctx context.Context, text, language string) string {
	out, err := a.translation.Translate(ctx, translationdto.TranslateInput{Text: text, Language: language})
	if err != nil {
		return text
	}
	return out.Text
}

func (a *TranslationAdapter) Supports(ctx context.Context, language string) bool {
	langs, err := a.translation.Languages(ctx)
	if err != nil {
		return false
	}
	for _, l := range langs {
		if l.Code == language {
			return true
		}
	}
	return false
}
