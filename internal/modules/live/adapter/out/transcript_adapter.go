package out

import (
	"context"

	"courtdesk/internal/modules/live/domain"
	liveout "courtdesk/internal/modules/live/port/out"
	transcriptdto "courtdesk/internal/modules/transcript/dto"
	transcriptin "courtdesk/internal/modules/transcript/port/in"
)

// TranscriptAdapter saves finished sessions and renders live entries
// through the transcript module's viewer.
type TranscriptAdapter struct {
	transcript transcriptin.Usecase
}

func NewTranscriptAdapter(transcript transcriptin.Usecase) *TranscriptAdapter {
	return &TranscriptAdapter{transcript: transcript}
}

var (
	_ liveout.RecordSink = (*TranscriptAdapter)(nil)
	_ liveout.Renderer   = (*TranscriptAdapter)(nil)
)

func (a *TranscriptAdapter) Append(ctx context.Context, record liveout.PendingRecord) (liveout.SavedRecord, error) {
	entries := make([]transcriptdto.EntryInput, 0, len(record.Entries))
	for _, e := range record.Entries {
		entries = append(entries, transcriptdto.EntryInput(e))
	}
	out, err := a.transcript.AppendRecord(ctx, transcriptdto.AppendRecordInput{
		CaseNumber: record.CaseNumber,
		CaseTitle:  record.CaseTitle,
		Date:       record.Date,
		Duration:   record.Duration,
		Language:   record.Language,
		ClerkName:  record.ClerkName,
		Status:     "completed",
		FileSize:   record.FileSize,
		Entries:    entries,
	})
	if err != nil {
		return liveout.SavedRecord{}, err
	}
	return liveout.SavedRecord{
		ID:         out.ID,
		CaseNumber: out.CaseNumber,
		CaseTitle:  out.CaseTitle,
		Entries:    out.EntryCount,
		FileSize:   out.FileSize,
		Duration:   out.Duration,
	}, nil
}

func (a *TranscriptAdapter) Render(ctx context.Context, entries []domain.Entry, language string) ([]domain.Entry, error) {
	in := make([]transcriptdto.EntryOutput, 0, len(entries))
	for _, e := range entries {
		in = append(in, transcriptdto.EntryOutput(e))
	}
	rendered, err := a.transcript.RenderEntries(ctx, transcriptdto.RenderEntriesInput{Entries: in, Language: language})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Entry, 0, len(rendered))
	for _, e := range rendered {
		out = append(out, domain.Entry(e))
	}
	return out, nil
}
