package in

import (
	"context"

	"courtdesk/internal/modules/transcript/dto"
	transcriptin "courtdesk/internal/modules/transcript/port/in"
)

type CLIHandler struct {
	usecase transcriptin.Usecase
}

func NewCLIHandler(usecase transcriptin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListRecords(ctx context.Context, caseNumber string) ([]dto.RecordOutput, error) {
	return h.usecase.ListRecords(ctx, dto.ListRecordsInput{CaseNumber: caseNumber})
}

func (h CLIHandler) GetRecord(ctx context.Context, id, language, search string) (dto.RecordDetailOutput, error) {
	return h.usecase.GetRecord(ctx, dto.GetRecordInput{ID: id, Language: language, Search: search})
}

func (h CLIHandler) RemoveRecord(ctx context.Context, id string) (bool, error) {
	return h.usecase.RemoveRecord(ctx, id)
}

func (h CLIHandler) ToggleBookmark(ctx context.Context, recordID, entryID string) (dto.EntryOutput, error) {
	return h.usecase.ToggleBookmark(ctx, dto.ToggleBookmarkInput{RecordID: recordID, EntryID: entryID})
}

func (h CLIHandler) Search(ctx context.Context, query string, limit int) ([]dto.RecordOutput, error) {
	return h.usecase.Search(ctx, dto.SearchInput{Query: query, Limit: limit})
}

func (h CLIHandler) Export(ctx context.Context, id string) (string, error) {
	return h.usecase.Export(ctx, id)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx, dto.ReindexInput{})
}
