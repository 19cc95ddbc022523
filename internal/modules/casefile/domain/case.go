package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "courtdesk/internal/platform/errors"
)

type Type string

const (
	TypeCriminal Type = "criminal"
	TypeCivil    Type = "civil"
	TypeFamily   Type = "family"
	TypeTraffic  Type = "traffic"
)

func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case TypeCriminal, TypeCivil, TypeFamily, TypeTraffic:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown case type %q", apperrors.ErrInvalidInput, raw)
	}
}

type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusClosed  Status = "closed"
)

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusActive, StatusPending, StatusClosed:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown case status %q", apperrors.ErrInvalidInput, raw)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	case "":
		return PriorityMedium, nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", apperrors.ErrInvalidInput, raw)
	}
}

type Case struct {
	ID          string   `json:"id"`
	CaseNumber  string   `json:"caseNumber"`
	Title       string   `json:"title"`
	Type        Type     `json:"type"`
	Status      Status   `json:"status"`
	Judge       string   `json:"judge"`
	NextHearing string   `json:"nextHearing"`
	Priority    Priority `json:"priority"`
	CreatedAt   string   `json:"createdAt"`
}

func (c Case) Validate() error {
	if strings.TrimSpace(c.CaseNumber) == "" {
		return fmt.Errorf("%w: case number is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: case title is required", apperrors.ErrInvalidInput)
	}
	if _, err := ParseType(string(c.Type)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(c.Status)); err != nil {
		return err
	}
	if _, err := ParsePriority(string(c.Priority)); err != nil {
		return err
	}
	if c.NextHearing != "" {
		if _, err := time.Parse("2006-01-02", c.NextHearing); err != nil {
			return fmt.Errorf("%w: next hearing %q is not YYYY-MM-DD", apperrors.ErrInvalidInput, c.NextHearing)
		}
	}
	return nil
}

// SameNumber compares case numbers the way users type them.
func SameNumber(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
