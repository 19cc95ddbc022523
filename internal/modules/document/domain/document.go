package domain

import (
	"fmt"
	"strings"

	apperrors "courtdesk/internal/platform/errors"
)

type Kind string

const (
	KindOrder    Kind = "order"
	KindJudgment Kind = "judgment"
	KindMotion   Kind = "motion"
	KindNotice   Kind = "notice"
)

func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case KindOrder, KindJudgment, KindMotion, KindNotice:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown document kind %q", apperrors.ErrInvalidInput, raw)
	}
}

type Status string

const (
	StatusDraft Status = "draft"
	StatusFinal Status = "final"
)

type Document struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	CaseNumber string `json:"caseNumber"`
	Kind       Kind   `json:"kind"`
	Status     Status `json:"status"`
	Content    string `json:"content"`
	UpdatedAt  string `json:"updatedAt"`
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: document title is required", apperrors.ErrInvalidInput)
	}
	if _, err := ParseKind(string(d.Kind)); err != nil {
		return err
	}
	switch d.Status {
	case StatusDraft, StatusFinal:
	default:
		return fmt.Errorf("%w: unknown document status %q", apperrors.ErrInvalidInput, string(d.Status))
	}
	return nil
}

// Editable is false once a document has been finalized.
func (d Document) Editable() bool {
	return d.Status != StatusFinal
}
