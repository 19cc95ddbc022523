package domain

import (
	"fmt"
	"strings"

	apperrors "courtdesk/internal/platform/errors"
)

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	French  Language = "fr"
	Spanish Language = "es"
	Urdu    Language = "ur"
)

// Source is the canonical language every original text is captured in.
const Source = English

var supported = []Language{English, Arabic, French, Spanish, Urdu}

var names = map[Language]string{
	English: "English",
	Arabic:  "Arabic",
	French:  "French",
	Spanish: "Spanish",
	Urdu:    "Urdu",
}

func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

func ParseLanguage(raw string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := names[l]; !ok {
		return "", fmt.Errorf("%w: unsupported language %q", apperrors.ErrInvalidInput, raw)
	}
	return l, nil
}

func (l Language) Name() string {
	if n, ok := names[l]; ok {
		return n
	}
	return string(l)
}
