package usecase_test

import (
	"context"
	"errors"
	"testing"

	translationout "courtdesk/internal/modules/translation/adapter/out"
	"courtdesk/internal/modules/translation/domain"
	"courtdesk/internal/modules/translation/dto"
	"courtdesk/internal/modules/translation/service"
	"courtdesk/internal/modules/translation/usecase"
	apperrors "courtdesk/internal/platform/errors"
)

type failingStore struct{ calls int }

func (f *failingStore) Load(context.Context) (domain.Dictionary, error) {
	f.calls++
	return domain.Dictionary{}, errors.New("disk on fire")
}

func TestTranslateMappedUnmappedAndSource(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewTranslationService(translationout.NewYAMLDictionaryStore("", nil), nil))
	ctx := context.Background()

	out, err := uc.Translate(ctx, dto.TranslateInput{Text: "Objection sustained.", Language: "ar"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if out.Text != "الاعتراض مقبول." || !out.Matched || out.Language != "ar" {
		t.Fatalf("unexpected output %+v", out)
	}

	out, err = uc.Translate(ctx, dto.TranslateInput{Text: "Some unmapped phrase", Language: "ar"})
	if err != nil {
		t.Fatalf("translate unmapped: %v", err)
	}
	if out.Text != "Some unmapped phrase" || out.Matched {
		t.Fatalf("unmapped should pass through unflagged as matched, got %+v", out)
	}

	out, err = uc.Translate(ctx, dto.TranslateInput{Text: "Anything at all", Language: "en"})
	if err != nil || out.Text != "Anything at all" || !out.Matched {
		t.Fatalf("source language should be identity, got %+v %v", out, err)
	}

	if _, err := uc.Translate(ctx, dto.TranslateInput{Text: "x", Language: "klingon"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestLoadFailureDegradesToPassthroughAndLoadsOnce(t *testing.T) {
	t.Parallel()
	store := &failingStore{}
	uc := usecase.NewInteractor(service.NewTranslationService(store, nil))
	for i := 0; i < 3; i++ {
		out, err := uc.Translate(context.Background(), dto.TranslateInput{Text: "Objection sustained.", Language: "fr"})
		if err != nil {
			t.Fatalf("translate: %v", err)
		}
		if out.Text != "Objection sustained." {
			t.Fatalf("expected passthrough, got %q", out.Text)
		}
	}
	if store.calls != 1 {
		t.Fatalf("dictionary should load once, loaded %d times", store.calls)
	}
}

func TestLanguagesListsPhraseCounts(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewTranslationService(translationout.NewYAMLDictionaryStore("", nil), nil))
	langs, err := uc.Languages(context.Background())
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if len(langs) != 5 || langs[0].Code != "en" || langs[0].Phrases != 0 {
		t.Fatalf("unexpected languages %+v", langs)
	}
	for _, l := range langs[1:] {
		if l.Phrases < 8 {
			t.Fatalf("language %s should cover the feed, has %d phrases", l.Code, l.Phrases)
		}
	}
}
