package domain

import (
	"fmt"
	"strings"

	apperrors "courtdesk/internal/platform/errors"
)

type Speaker string

const (
	SpeakerJudge   Speaker = "Judge"
	SpeakerClerk   Speaker = "Clerk"
	SpeakerLawyer  Speaker = "Lawyer"
	SpeakerWitness Speaker = "Witness"
)

func (s Speaker) Validate() error {
	switch s {
	case SpeakerJudge, SpeakerClerk, SpeakerLawyer, SpeakerWitness:
		return nil
	default:
		return fmt.Errorf("%w: unknown speaker %q", apperrors.ErrInvalidInput, string(s))
	}
}

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusProcessing Status = "processing"
	StatusFailed     Status = "failed"
)

func (s Status) Validate() error {
	switch s {
	case StatusCompleted, StatusProcessing, StatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: unknown record status %q", apperrors.ErrInvalidInput, string(s))
	}
}

// Entry is one utterance. OriginalText holds the English source and never
// changes after ingestion; Text is the rendering in the capture language.
type Entry struct {
	ID           string  `json:"id"`
	Timestamp    string  `json:"timestamp"`
	Speaker      Speaker `json:"speaker"`
	Text         string  `json:"text"`
	OriginalText string  `json:"originalText,omitempty"`
	Confidence   int     `json:"confidence"`
	IsBookmarked bool    `json:"isBookmarked"`
}

// Source is the text re-translation starts from. Older records carry no
// OriginalText, so their Text stands in.
func (e Entry) Source() string {
	if e.OriginalText != "" {
		return e.OriginalText
	}
	return e.Text
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("%w: entry id is required", apperrors.ErrInvalidInput)
	}
	if err := e.Speaker.Validate(); err != nil {
		return err
	}
	if e.Confidence < 0 || e.Confidence > 100 {
		return fmt.Errorf("%w: confidence %d out of range", apperrors.ErrInvalidInput, e.Confidence)
	}
	return nil
}

type Record struct {
	ID         string  `json:"id"`
	CaseNumber string  `json:"caseNumber"`
	CaseTitle  string  `json:"caseTitle"`
	Date       string  `json:"date"`
	Duration   string  `json:"duration"`
	Language   string  `json:"language"`
	ClerkName  string  `json:"clerkName"`
	Status     Status  `json:"status"`
	FileSize   string  `json:"fileSize"`
	Entries    []Entry `json:"entries"`
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.CaseNumber) == "" {
		return fmt.Errorf("%w: case number is required", apperrors.ErrInvalidInput)
	}
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if len(r.Entries) == 0 {
		return apperrors.ErrEmptyTranscript
	}
	for _, e := range r.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone copies the entry slice so callers cannot mutate cached records.
func (r Record) Clone() Record {
	out := r
	out.Entries = append([]Entry(nil), r.Entries...)
	return out
}

// EstimateFileSize is the display-only size shown for a record of n entries.
func EstimateFileSize(n int) string {
	return fmt.Sprintf("%.1f MB", float64(n)*0.1)
}
