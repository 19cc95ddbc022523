package usecase

import (
	"context"
	"strings"

	"courtdesk/internal/modules/document/domain"
	"courtdesk/internal/modules/document/dto"
	documentin "courtdesk/internal/modules/document/port/in"
	"courtdesk/internal/modules/document/service"
	"courtdesk/internal/platform/role"
)

type Interactor struct {
	svc *service.DocumentService
}

func NewInteractor(svc *service.DocumentService) documentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListDocuments(ctx context.Context, input dto.ListDocumentsInput) ([]dto.DocumentOutput, error) {
	docs := i.svc.List(ctx)
	out := make([]dto.DocumentOutput, 0, len(docs))
	for _, d := range docs {
		if input.CaseNumber != "" && !strings.EqualFold(d.CaseNumber, strings.TrimSpace(input.CaseNumber)) {
			continue
		}
		out = append(out, toOutput(d))
	}
	return out, nil
}

func (i *Interactor) GetDocument(ctx context.Context, id string) (dto.DocumentOutput, error) {
	d, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	return toOutput(d), nil
}

func (i *Interactor) SaveDocument(ctx context.Context, input dto.SaveDocumentInput) (dto.DocumentOutput, error) {
	d, err := i.svc.Save(ctx, service.SaveDocumentInput(input))
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	return toOutput(d), nil
}

func (i *Interactor) FinalizeDocument(ctx context.Context, actor role.Role, id string) (dto.DocumentOutput, error) {
	if err := actor.Require(actor.CanFinalize(), "finalize documents"); err != nil {
		return dto.DocumentOutput{}, err
	}
	d, err := i.svc.Finalize(ctx, id)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	return toOutput(d), nil
}

func (i *Interactor) RemoveDocument(ctx context.Context, id string) (bool, error) {
	return i.svc.Remove(ctx, id), nil
}

func toOutput(d domain.Document) dto.DocumentOutput {
	return dto.DocumentOutput{
		ID:         d.ID,
		Title:      d.Title,
		CaseNumber: d.CaseNumber,
		Kind:       string(d.Kind),
		Status:     string(d.Status),
		Content:    d.Content,
		UpdatedAt:  d.UpdatedAt,
	}
}
