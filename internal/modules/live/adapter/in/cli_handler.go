package in

import (
	"context"

	"courtdesk/internal/modules/live/dto"
	livein "courtdesk/internal/modules/live/port/in"
	"courtdesk/internal/platform/role"
)

type CLIHandler struct {
	usecase livein.Usecase
}

func NewCLIHandler(usecase livein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Arm(ctx context.Context, actor role.Role, caseNumber, language string) error {
	return h.usecase.Arm(ctx, actor, dto.ArmInput{CaseNumber: caseNumber, Language: language})
}

func (h CLIHandler) Start(ctx context.Context) error {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) TogglePause(ctx context.Context) (string, error) {
	return h.usecase.TogglePause(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Save(ctx context.Context) (dto.SaveOutput, error) {
	return h.usecase.Save(ctx)
}

func (h CLIHandler) Discard(ctx context.Context) error {
	return h.usecase.Discard(ctx)
}

func (h CLIHandler) ToggleBookmark(ctx context.Context, entryID string) (dto.EntryOutput, error) {
	return h.usecase.ToggleBookmark(ctx, entryID)
}

func (h CLIHandler) SetDisplayLanguage(ctx context.Context, language string) error {
	return h.usecase.SetDisplayLanguage(ctx, language)
}

func (h CLIHandler) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) Close() {
	h.usecase.Close()
}
