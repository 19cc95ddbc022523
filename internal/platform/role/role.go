// Package role models the two courtroom roles the desk is gated on.
package role

import (
	"fmt"
	"strings"

	apperrors "courtdesk/internal/platform/errors"
)

type Role int

const (
	Judge Role = iota + 1
	Clerk
)

func Parse(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "judge":
		return Judge, nil
	case "clerk":
		return Clerk, nil
	default:
		return 0, fmt.Errorf("%w: unknown role %q (want judge|clerk)", apperrors.ErrInvalidInput, raw)
	}
}

func (r Role) String() string {
	switch r {
	case Judge:
		return "judge"
	case Clerk:
		return "clerk"
	}
	return "unknown"
}

// Title is the display name used on the status bar.
func (r Role) Title() string {
	switch r {
	case Judge:
		return "Judge"
	case Clerk:
		return "Clerk"
	}
	return "Unknown"
}

// CanRecord reports whether the role may run live transcription.
func (r Role) CanRecord() bool {
	switch r {
	case Clerk:
		return true
	case Judge:
		return false
	}
	return false
}

// CanFinalize reports whether the role may finalize document drafts.
func (r Role) CanFinalize() bool {
	switch r {
	case Judge:
		return true
	case Clerk:
		return false
	}
	return false
}

// Require returns ErrForbidden unless allowed holds.
func (r Role) Require(allowed bool, action string) error {
	if allowed {
		return nil
	}
	return fmt.Errorf("%w: %s cannot %s", apperrors.ErrForbidden, r, action)
}
