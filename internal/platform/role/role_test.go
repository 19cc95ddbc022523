package role

import (
	"errors"
	"testing"

	apperrors "courtdesk/internal/platform/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()
	cases := map[string]Role{"judge": Judge, " Clerk ": Clerk, "JUDGE": Judge}
	for raw, want := range cases {
		got, err := Parse(raw)
		if err != nil || got != want {
			t.Fatalf("parse %q: got %v %v", raw, got, err)
		}
	}
	if _, err := Parse("admin"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestPermissions(t *testing.T) {
	t.Parallel()
	if !Clerk.CanRecord() || Judge.CanRecord() {
		t.Fatalf("only clerks record")
	}
	if !Judge.CanFinalize() || Clerk.CanFinalize() {
		t.Fatalf("only judges finalize")
	}
	if err := Judge.Require(Judge.CanRecord(), "record"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := Clerk.Require(Clerk.CanRecord(), "record"); err != nil {
		t.Fatalf("clerk should record: %v", err)
	}
}
