package service

import (
	"context"
	"strings"

	"courtdesk/internal/modules/transcript/domain"
	transcriptout "courtdesk/internal/modules/transcript/port/out"
)

// Viewer projects stored entries into a display language. It never
// touches the record it renders.
type Viewer struct {
	translator transcriptout.Translator
}

func NewViewer(translator transcriptout.Translator) Viewer {
	return Viewer{translator: translator}
}

// Render recomputes Text for each entry from its source text. Rendering the
// output again with another language gives the same result as rendering the
// original, because OriginalText is carried through untouched.
func (v Viewer) Render(ctx context.Context, entries []domain.Entry, language string) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	for i, e := range entries {
		src := e.Source()
		e.OriginalText = src
		e.Text = v.translator.Translate(ctx, src, language)
		out[i] = e
	}
	return out
}

// Filter keeps entries whose text or speaker contains query, ignoring case.
func Filter(entries []domain.Entry, query string) []domain.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]domain.Entry(nil), entries...)
	}
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Text), q) || strings.Contains(strings.ToLower(string(e.Speaker)), q) {
			out = append(out, e)
		}
	}
	return out
}
