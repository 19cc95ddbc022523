package in

import (
	"context"

	"courtdesk/internal/modules/transcript/dto"
)

type Usecase interface {
	ListRecords(ctx context.Context, input dto.ListRecordsInput) ([]dto.RecordOutput, error)
	GetRecord(ctx context.Context, input dto.GetRecordInput) (dto.RecordDetailOutput, error)
	AppendRecord(ctx context.Context, input dto.AppendRecordInput) (dto.RecordOutput, error)
	RemoveRecord(ctx context.Context, id string) (bool, error)
	ToggleBookmark(ctx context.Context, input dto.ToggleBookmarkInput) (dto.EntryOutput, error)
	Search(ctx context.Context, input dto.SearchInput) ([]dto.RecordOutput, error)
	Export(ctx context.Context, id string) (string, error)
	Reindex(ctx context.Context, input dto.ReindexInput) error
	RenderEntries(ctx context.Context, input dto.RenderEntriesInput) ([]dto.EntryOutput, error)
}
