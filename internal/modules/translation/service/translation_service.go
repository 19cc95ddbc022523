package service

import (
	"context"
	"sync"

	"courtdesk/internal/modules/translation/domain"
	translationout "courtdesk/internal/modules/translation/port/out"
	"courtdesk/internal/platform/logger"
)

// TranslationService loads the dictionary once and answers lookups from it.
// If loading fails every lookup passes through untranslated.
type TranslationService struct {
	store translationout.DictionaryStore
	log   *logger.Logger

	once sync.Once
	dict domain.Dictionary
}

func NewTranslationService(store translationout.DictionaryStore, log *logger.Logger) *TranslationService {
	if log == nil {
		log = logger.Nop()
	}
	return &TranslationService{store: store, log: log}
}

func (s *TranslationService) dictionary(ctx context.Context) domain.Dictionary {
	s.once.Do(func() {
		dict, err := s.store.Load(ctx)
		if err != nil {
			s.log.Error("load dictionary failed, translations disabled", "error", err)
			dict = domain.NewDictionary()
		}
		s.dict = dict
	})
	return s.dict
}

func (s *TranslationService) Translate(ctx context.Context, text string, target domain.Language) (string, bool) {
	return s.dictionary(ctx).Lookup(text, target)
}

func (s *TranslationService) PhraseCount(ctx context.Context, lang domain.Language) int {
	return s.dictionary(ctx).Size(lang)
}
