package usecase

import (
	"context"
	"fmt"
	"strings"

	"courtdesk/internal/modules/casefile/domain"
	"courtdesk/internal/modules/casefile/dto"
	casefilein "courtdesk/internal/modules/casefile/port/in"
	"courtdesk/internal/modules/casefile/service"
	apperrors "courtdesk/internal/platform/errors"
)

type Interactor struct {
	svc *service.CaseService
}

func NewInteractor(svc *service.CaseService) casefilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListCases(ctx context.Context, input dto.ListCasesInput) ([]dto.CaseOutput, error) {
	var filter domain.Status
	if strings.TrimSpace(input.Status) != "" {
		status, err := domain.ParseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		filter = status
	}
	cases := i.svc.List(ctx)
	out := make([]dto.CaseOutput, 0, len(cases))
	for _, c := range cases {
		if filter != "" && c.Status != filter {
			continue
		}
		out = append(out, toOutput(c))
	}
	return out, nil
}

func (i *Interactor) GetCase(ctx context.Context, caseNumber string) (dto.CaseOutput, error) {
	if strings.TrimSpace(caseNumber) == "" {
		return dto.CaseOutput{}, fmt.Errorf("%w: case number is required", apperrors.ErrInvalidInput)
	}
	c, err := i.svc.Get(ctx, caseNumber)
	if err != nil {
		return dto.CaseOutput{}, err
	}
	return toOutput(c), nil
}

func (i *Interactor) CreateCase(ctx context.Context, input dto.CreateCaseInput) (dto.CaseOutput, error) {
	c, err := i.svc.Create(ctx, service.CreateCaseInput(input))
	if err != nil {
		return dto.CaseOutput{}, err
	}
	return toOutput(c), nil
}

func (i *Interactor) UpdateStatus(ctx context.Context, input dto.UpdateStatusInput) (dto.CaseOutput, error) {
	c, err := i.svc.UpdateStatus(ctx, input.CaseNumber, input.Status)
	if err != nil {
		return dto.CaseOutput{}, err
	}
	return toOutput(c), nil
}

func (i *Interactor) RemoveCase(ctx context.Context, caseNumber string) (bool, error) {
	if strings.TrimSpace(caseNumber) == "" {
		return false, fmt.Errorf("%w: case number is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Remove(ctx, caseNumber), nil
}

func toOutput(c domain.Case) dto.CaseOutput {
	return dto.CaseOutput{
		ID:          c.ID,
		CaseNumber:  c.CaseNumber,
		Title:       c.Title,
		Type:        string(c.Type),
		Status:      string(c.Status),
		Judge:       c.Judge,
		NextHearing: c.NextHearing,
		Priority:    string(c.Priority),
		CreatedAt:   c.CreatedAt,
	}
}
