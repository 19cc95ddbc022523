package usecase

import (
	"context"
	"strings"

	"courtdesk/internal/modules/live/domain"
	"courtdesk/internal/modules/live/dto"
	livein "courtdesk/internal/modules/live/port/in"
	"courtdesk/internal/modules/live/service"
	"courtdesk/internal/platform/role"
)

type Interactor struct {
	svc *service.LiveService
}

func NewInteractor(svc *service.LiveService) livein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Arm(ctx context.Context, actor role.Role, input dto.ArmInput) error {
	if err := actor.Require(actor.CanRecord(), "record live sessions"); err != nil {
		return err
	}
	return i.svc.Arm(ctx, input.CaseNumber, strings.ToLower(strings.TrimSpace(input.Language)))
}

func (i *Interactor) Start(ctx context.Context) error {
	return i.svc.Start(ctx)
}

func (i *Interactor) TogglePause(ctx context.Context) (string, error) {
	state, err := i.svc.TogglePause(ctx)
	return state.String(), err
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.svc.Stop(ctx)
}

func (i *Interactor) Save(ctx context.Context) (dto.SaveOutput, error) {
	saved, err := i.svc.Save(ctx)
	if err != nil {
		return dto.SaveOutput{}, err
	}
	return dto.SaveOutput{
		RecordID:   saved.ID,
		CaseNumber: saved.CaseNumber,
		CaseTitle:  saved.CaseTitle,
		Entries:    saved.Entries,
		Duration:   saved.Duration,
		FileSize:   saved.FileSize,
	}, nil
}

func (i *Interactor) Discard(ctx context.Context) error {
	return i.svc.Discard(ctx)
}

func (i *Interactor) ToggleBookmark(ctx context.Context, entryID string) (dto.EntryOutput, error) {
	e, err := i.svc.ToggleBookmark(ctx, entryID)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toEntryOutput(e), nil
}

func (i *Interactor) SetDisplayLanguage(ctx context.Context, language string) error {
	return i.svc.SetDisplayLanguage(ctx, strings.ToLower(strings.TrimSpace(language)))
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	entries := make([]dto.EntryOutput, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		entries = append(entries, toEntryOutput(e))
	}
	return dto.SnapshotOutput{
		State:           snap.State.String(),
		CaseNumber:      snap.CaseNumber,
		Language:        snap.Language,
		DisplayLanguage: snap.DisplayLanguage,
		Elapsed:         snap.Elapsed,
		Entries:         entries,
		CurrentSpeaker:  snap.CurrentSpeaker,
		Confidence:      snap.Confidence,
		Remaining:       snap.Remaining,
	}, nil
}

func (i *Interactor) Close() {
	i.svc.Close()
}

func toEntryOutput(e domain.Entry) dto.EntryOutput {
	return dto.EntryOutput(e)
}
