package out

import (
	"context"

	translationdto "courtdesk/internal/modules/translation/dto"
	translationin "courtdesk/internal/modules/translation/port/in"
	transcriptout "courtdesk/internal/modules/transcript/port/out"
)

// TranslationAdapter bridges the translation usecase into the viewer.
// An unsupported language renders the source text unchanged.
type TranslationAdapter struct {
	translation translationin.Usecase
}

func NewTranslationAdapter(translation translationin.Usecase) transcriptout.Translator {
	return &TranslationAdapter{translation: translation}
}

func (a *TranslationAdapter) Translate(ctx context.Context, text, language string) string {
	out, err := a.translation.Translate(ctx, translationdto.TranslateInput{Text: text, Language: language})
	if err != nil {
		return text
	}
	return out.Text
}
