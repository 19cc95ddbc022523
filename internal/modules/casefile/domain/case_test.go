package domain

import (
	"errors"
	"testing"

	apperrors "courtdesk/internal/platform/errors"
)

func TestCaseValidate(t *testing.T) {
	t.Parallel()
	valid := Case{CaseNumber: "2025-CR-100", Title: "State vs. Doe", Type: TypeCriminal, Status: StatusActive, Priority: PriorityHigh, NextHearing: "2025-03-01"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid case, got %v", err)
	}

	cases := map[string]func(c *Case){
		"missing number": func(c *Case) { c.CaseNumber = " " },
		"missing title":  func(c *Case) { c.Title = "" },
		"bad type":       func(c *Case) { c.Type = "admiralty" },
		"bad status":     func(c *Case) { c.Status = "archived" },
		"bad priority":   func(c *Case) { c.Priority = "urgent" },
		"bad hearing":    func(c *Case) { c.NextHearing = "next tuesday" },
	}
	for name, mutate := range cases {
		c := valid
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}
}

func TestParsePriorityDefaultsToMedium(t *testing.T) {
	t.Parallel()
	p, err := ParsePriority("")
	if err != nil || p != PriorityMedium {
		t.Fatalf("expected medium default, got %q %v", p, err)
	}
}

func TestSeedCasesAreValidAndUnique(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, c := range SeedCases() {
		if err := c.Validate(); err != nil {
			t.Fatalf("seed %s invalid: %v", c.CaseNumber, err)
		}
		if seen[c.CaseNumber] {
			t.Fatalf("duplicate seed number %s", c.CaseNumber)
		}
		seen[c.CaseNumber] = true
	}
}
