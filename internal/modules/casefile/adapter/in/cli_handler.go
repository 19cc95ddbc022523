package in

import (
	"context"

	"courtdesk/internal/modules/casefile/dto"
	casefilein "courtdesk/internal/modules/casefile/port/in"
)

type CLIHandler struct {
	usecase casefilein.Usecase
}

func NewCLIHandler(usecase casefilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListCases(ctx context.Context, status string) ([]dto.CaseOutput, error) {
	return h.usecase.ListCases(ctx, dto.ListCasesInput{Status: status})
}

func (h CLIHandler) GetCase(ctx context.Context, caseNumber string) (dto.CaseOutput, error) {
	return h.usecase.GetCase(ctx, caseNumber)
}

func (h CLIHandler) CreateCase(ctx context.Context, caseNumber, title, caseType, judge, nextHearing, priority string) (dto.CaseOutput, error) {
	return h.usecase.CreateCase(ctx, dto.CreateCaseInput{
		CaseNumber:  caseNumber,
		Title:       title,
		Type:        caseType,
		Judge:       judge,
		NextHearing: nextHearing,
		Priority:    priority,
	})
}

func (h CLIHandler) UpdateStatus(ctx context.Context, caseNumber, status string) (dto.CaseOutput, error) {
	return h.usecase.UpdateStatus(ctx, dto.UpdateStatusInput{CaseNumber: caseNumber, Status: status})
}

func (h CLIHandler) RemoveCase(ctx context.Context, caseNumber string) (bool, error) {
	return h.usecase.RemoveCase(ctx, caseNumber)
}
