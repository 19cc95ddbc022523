package out

import (
	"context"

	casefilein "courtdesk/internal/modules/casefile/port/in"
	liveout "courtdesk/internal/modules/live/port/out"
)

type CaseDirectoryAdapter struct {
	cases casefilein.Usecase
}

func NewCaseDirectoryAdapter(cases casefilein.Usecase) liveout.CaseDirectory {
	return &CaseDirectoryAdapter{cases: cases}
}

func (a *CaseDirectoryAdapter) Title(ctx context.Context, caseNumber string) (string, bool) {
	c, err := a.cases.GetCase(ctx, caseNumber)
	if err != nil || c.Title == "" {
		return "", false
	}
	return c.Title, true
}
