package out

import (
	"context"

	"courtdesk/internal/modules/live/domain"
)

// Translator renders feed text into the locked capture language.
type Translator interface {
	Translate(ctx context.Context, text, language string) string
	Supports(ctx context.Context, language string) bool
}

// Renderer re-renders live entries for a display language from their
// original text.
type Renderer interface {
	Render(ctx context.Context, entries []domain.Entry, language string) ([]domain.Entry, error)
}

type SavedRecord struct {
	ID         string
	CaseNumber string
	CaseTitle  string
	Entries    int
	FileSize   string
	Duration   string
}

type PendingRecord struct {
	CaseNumber string
	CaseTitle  string
	Date       string
	Duration   string
	Language   string
	ClerkName  string
	FileSize   string
	Entries    []domain.Entry
}

// RecordSink appends a finished session to the transcription store.
type RecordSink interface {
	Append(ctx context.Context, record PendingRecord) (SavedRecord, error)
}

// CaseDirectory looks up a case title by number.
type CaseDirectory interface {
	Title(ctx context.Context, caseNumber string) (string, bool)
}
