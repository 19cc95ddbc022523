package in

import (
	"context"

	"courtdesk/internal/modules/casefile/dto"
)

type Usecase interface {
	ListCases(ctx context.Context, input dto.ListCasesInput) ([]dto.CaseOutput, error)
	GetCase(ctx context.Context, caseNumber string) (dto.CaseOutput, error)
	CreateCase(ctx context.Context, input dto.CreateCaseInput) (dto.CaseOutput, error)
	UpdateStatus(ctx context.Context, input dto.UpdateStatusInput) (dto.CaseOutput, error)
	RemoveCase(ctx context.Context, caseNumber string) (bool, error)
}
