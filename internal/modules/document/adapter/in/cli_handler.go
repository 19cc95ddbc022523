package in

import (
	"context"

	"courtdesk/internal/modules/document/dto"
	documentin "courtdesk/internal/modules/document/port/in"
	"courtdesk/internal/platform/role"
)

type CLIHandler struct {
	usecase documentin.Usecase
}

func NewCLIHandler(usecase documentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListDocuments(ctx context.Context, caseNumber string) ([]dto.DocumentOutput, error) {
	return h.usecase.ListDocuments(ctx, dto.ListDocumentsInput{CaseNumber: caseNumber})
}

func (h CLIHandler) GetDocument(ctx context.Context, id string) (dto.DocumentOutput, error) {
	return h.usecase.GetDocument(ctx, id)
}

func (h CLIHandler) SaveDocument(ctx context.Context, id, title, caseNumber, kind, content string) (dto.DocumentOutput, error) {
	return h.usecase.SaveDocument(ctx, dto.SaveDocumentInput{ID: id, Title: title, CaseNumber: caseNumber, Kind: kind, Content: content})
}

func (h CLIHandler) FinalizeDocument(ctx context.Context, actor role.Role, id string) (dto.DocumentOutput, error) {
	return h.usecase.FinalizeDocument(ctx, actor, id)
}

func (h CLIHandler) RemoveDocument(ctx context.Context, id string) (bool, error) {
	return h.usecase.RemoveDocument(ctx, id)
}
