package usecase

import (
	"context"
	"fmt"
	"strings"

	"courtdesk/internal/modules/transcript/domain"
	"courtdesk/internal/modules/transcript/dto"
	transcriptin "courtdesk/internal/modules/transcript/port/in"
	"courtdesk/internal/modules/transcript/service"
	apperrors "courtdesk/internal/platform/errors"
)

type Interactor struct {
	svc    *service.RecordService
	viewer service.Viewer
}

func NewInteractor(svc *service.RecordService, viewer service.Viewer) transcriptin.Usecase {
	return &Interactor{svc: svc, viewer: viewer}
}

func (i *Interactor) ListRecords(ctx context.Context, input dto.ListRecordsInput) ([]dto.RecordOutput, error) {
	records := i.svc.List(ctx, input.CaseNumber)
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordOutput(r))
	}
	return out, nil
}

func (i *Interactor) GetRecord(ctx context.Context, input dto.GetRecordInput) (dto.RecordDetailOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return dto.RecordDetailOutput{}, fmt.Errorf("%w: record id is required", apperrors.ErrInvalidInput)
	}
	record, err := i.svc.Get(ctx, input.ID)
	if err != nil {
		return dto.RecordDetailOutput{}, err
	}
	entries := record.Entries
	display := record.Language
	if strings.TrimSpace(input.Language) != "" {
		display = strings.ToLower(strings.TrimSpace(input.Language))
		entries = i.viewer.Render(ctx, entries, display)
	}
	entries = service.Filter(entries, input.Search)
	return dto.RecordDetailOutput{
		RecordOutput:    toRecordOutput(record),
		DisplayLanguage: display,
		Entries:         toEntryOutputs(entries),
	}, nil
}

func (i *Interactor) AppendRecord(ctx context.Context, input dto.AppendRecordInput) (dto.RecordOutput, error) {
	record := domain.Record{
		CaseNumber: strings.TrimSpace(input.CaseNumber),
		CaseTitle:  input.CaseTitle,
		Date:       input.Date,
		Duration:   input.Duration,
		Language:   input.Language,
		ClerkName:  input.ClerkName,
		Status:     domain.Status(input.Status),
		FileSize:   input.FileSize,
		Entries:    fromEntryInputs(input.Entries),
	}
	if record.FileSize == "" {
		record.FileSize = domain.EstimateFileSize(len(record.Entries))
	}
	saved, err := i.svc.Append(ctx, record)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toRecordOutput(saved), nil
}

func (i *Interactor) RemoveRecord(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, fmt.Errorf("%w: record id is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Remove(ctx, id), nil
}

func (i *Interactor) ToggleBookmark(ctx context.Context, input dto.ToggleBookmarkInput) (dto.EntryOutput, error) {
	entry, err := i.svc.ToggleBookmark(ctx, input.RecordID, input.EntryID)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toEntryOutput(entry), nil
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) ([]dto.RecordOutput, error) {
	records, err := i.svc.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordOutput(r))
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, id string) (string, error) {
	return i.svc.Export(ctx, id)
}

func (i *Interactor) Reindex(ctx context.Context, input dto.ReindexInput) error {
	if input.Reload {
		i.svc.Reload()
	}
	return i.svc.Reindex(ctx)
}

func (i *Interactor) RenderEntries(ctx context.Context, input dto.RenderEntriesInput) ([]dto.EntryOutput, error) {
	entries := make([]dto.EntryInput, 0, len(input.Entries))
	for _, e := range input.Entries {
		entries = append(entries, dto.EntryInput(e))
	}
	rendered := i.viewer.Render(ctx, fromEntryInputs(entries), input.Language)
	return toEntryOutputs(service.Filter(rendered, input.Search)), nil
}

func toRecordOutput(r domain.Record) dto.RecordOutput {
	bookmarks := 0
	for _, e := range r.Entries {
		if e.IsBookmarked {
			bookmarks++
		}
	}
	return dto.RecordOutput{
		ID:         r.ID,
		CaseNumber: r.CaseNumber,
		CaseTitle:  r.CaseTitle,
		Date:       r.Date,
		Duration:   r.Duration,
		Language:   r.Language,
		ClerkName:  r.ClerkName,
		Status:     string(r.Status),
		FileSize:   r.FileSize,
		EntryCount: len(r.Entries),
		Bookmarks:  bookmarks,
	}
}

func toEntryOutput(e domain.Entry) dto.EntryOutput {
	return dto.EntryOutput{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Speaker:      string(e.Speaker),
		Text:         e.Text,
		OriginalText: e.OriginalText,
		Confidence:   e.Confidence,
		IsBookmarked: e.IsBookmarked,
	}
}

func toEntryOutputs(entries []domain.Entry) []dto.EntryOutput {
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryOutput(e))
	}
	return out
}

func fromEntryInputs(in []dto.EntryInput) []domain.Entry {
	out := make([]domain.Entry, 0, len(in))
	for _, e := range in {
		out = append(out, domain.Entry{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			Speaker:      domain.Speaker(e.Speaker),
			Text:         e.Text,
			OriginalText: e.OriginalText,
			Confidence:   e.Confidence,
			IsBookmarked: e.IsBookmarked,
		})
	}
	return out
}
