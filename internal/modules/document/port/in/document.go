package in

import (
	"context"

	"courtdesk/internal/modules/document/dto"
	"courtdesk/internal/platform/role"
)

type Usecase interface {
	ListDocuments(ctx context.Context, input dto.ListDocumentsInput) ([]dto.DocumentOutput, error)
	GetDocument(ctx context.Context, id string) (dto.DocumentOutput, error)
	SaveDocument(ctx context.Context, input dto.SaveDocumentInput) (dto.DocumentOutput, error)
	FinalizeDocument(ctx context.Context, actor role.Role, id string) (dto.DocumentOutput, error)
	RemoveDocument(ctx context.Context, id string) (bool, error)
}
