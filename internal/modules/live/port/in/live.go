package in

import (
	"context"

	"courtdesk/internal/modules/live/dto"
	"courtdesk/internal/platform/role"
)

type Usecase interface {
	Arm(ctx context.Context, actor role.Role, input dto.ArmInput) error
	Start(ctx context.Context) error
	TogglePause(ctx context.Context) (string, error)
	Stop(ctx context.Context) error
	Save(ctx context.Context) (dto.SaveOutput, error)
	Discard(ctx context.Context) error
	ToggleBookmark(ctx context.Context, entryID string) (dto.EntryOutput, error)
	SetDisplayLanguage(ctx context.Context, language string) error
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	Close()
}
