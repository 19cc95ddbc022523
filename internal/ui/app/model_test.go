package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	casefiledto "courtdesk/internal/modules/casefile/dto"
	documentdto "courtdesk/internal/modules/document/dto"
	livedto "courtdesk/internal/modules/live/dto"
	transcriptdto "courtdesk/internal/modules/transcript/dto"
	"courtdesk/internal/platform/role"
)

type fakeRecords struct{}

func (fakeRecords) ListRecords(context.Context, string) ([]transcriptdto.RecordOutput, error) {
	return nil, nil
}
func (fakeRecords) GetRecord(context.Context, string, string, string) (transcriptdto.RecordDetailOutput, error) {
	return transcriptdto.RecordDetailOutput{}, nil
}
func (fakeRecords) RemoveRecord(context.Context, string) (bool, error) { return false, nil }
func (fakeRecords) ToggleBookmark(context.Context, string, string) (transcriptdto.EntryOutput, error) {
	return transcriptdto.EntryOutput{}, nil
}
func (fakeRecords) Export(context.Context, string) (string, error) { return "", nil }

type fakeCases struct {
	created []string
}

func (f *fakeCases) ListCases(context.Context, string) ([]casefiledto.CaseOutput, error) {
	return nil, nil
}
func (f *fakeCases) CreateCase(_ context.Context, caseNumber, title, caseType, _, _, _ string) (casefiledto.CaseOutput, error) {
	f.created = append(f.created, caseNumber+"|"+caseType+"|"+title)
	return casefiledto.CaseOutput{CaseNumber: caseNumber, Title: title, Type: caseType}, nil
}
func (f *fakeCases) UpdateStatus(context.Context, string, string) (casefiledto.CaseOutput, error) {
	return casefiledto.CaseOutput{}, nil
}
func (f *fakeCases) RemoveCase(context.Context, string) (bool, error) { return true, nil }

type fakeDocuments struct{}

func (fakeDocuments) ListDocuments(context.Context, string) ([]documentdto.DocumentOutput, error) {
	return nil, nil
}
func (fakeDocuments) SaveDocument(context.Context, string, string, string, string, string) (documentdto.DocumentOutput, error) {
	return documentdto.DocumentOutput{}, nil
}
func (fakeDocuments) FinalizeDocument(context.Context, role.Role, string) (documentdto.DocumentOutput, error) {
	return documentdto.DocumentOutput{}, nil
}
func (fakeDocuments) RemoveDocument(context.Context, string) (bool, error) { return true, nil }

type fakeLive struct {
	armedBy role.Role
	armErr  error
}

func (f *fakeLive) Arm(_ context.Context, actor role.Role, _, _ string) error {
	f.armedBy = actor
	return f.armErr
}
func (f *fakeLive) Start(context.Context) error { return nil }
func (f *fakeLive) TogglePause(context.Context) (string, error) {
	return "paused", nil
}
func (f *fakeLive) Stop(context.Context) error { return nil }
func (f *fakeLive) Save(context.Context) (livedto.SaveOutput, error) {
	return livedto.SaveOutput{}, nil
}
func (f *fakeLive) Discard(context.Context) error { return nil }
func (f *fakeLive) ToggleBookmark(context.Context, string) (livedto.EntryOutput, error) {
	return livedto.EntryOutput{}, nil
}
func (f *fakeLive) SetDisplayLanguage(context.Context, string) error { return nil }
func (f *fakeLive) Snapshot(context.Context) (livedto.SnapshotOutput, error) {
	return livedto.SnapshotOutput{State: "idle"}, nil
}

func newTestModel(r role.Role) (Model, *fakeCases, *fakeLive) {
	cases := &fakeCases{}
	live := &fakeLive{}
	return NewModel(r, []string{"en", "ar"}, fakeRecords{}, cases, fakeDocuments{}, live), cases, live
}

func TestTabsFollowRole(t *testing.T) {
	t.Parallel()
	judge, _, _ := newTestModel(role.Judge)
	if judge.hasLive || judge.hasTab(tabLive) || !judge.hasTab(tabDocuments) {
		t.Fatalf("judge tabs = %v", judge.tabs)
	}
	clerk, _, _ := newTestModel(role.Clerk)
	if !clerk.hasLive || clerk.currentTab() != tabLive || clerk.hasTab(tabDocuments) {
		t.Fatalf("clerk tabs = %v", clerk.tabs)
	}
}

func TestPaletteRejectsCommandsOutsideRole(t *testing.T) {
	t.Parallel()
	judge, _, live := newTestModel(role.Judge)
	next, cmd := judge.executePalette("live:arm 2025-CR-001 en")
	if cmd != nil {
		t.Fatalf("expected no command for judge live:arm")
	}
	if got := next.(Model).status; !strings.Contains(got, "not available") {
		t.Fatalf("status = %q", got)
	}
	if live.armedBy != 0 {
		t.Fatalf("live port was called")
	}

	clerk, _, _ := newTestModel(role.Clerk)
	next, _ = clerk.executePalette("doc:finalize")
	if got := next.(Model).status; !strings.Contains(got, "not available") {
		t.Fatalf("status = %q", got)
	}
}

func TestPaletteCaseAddJoinsTitle(t *testing.T) {
	t.Parallel()
	m, cases, _ := newTestModel(role.Clerk)
	_, cmd := m.executePalette("case:add 2025-CV-777 civil Doe vs. Roe")
	if cmd == nil {
		t.Fatalf("expected command")
	}
	msg, ok := cmd().(opDoneMsg)
	if !ok || msg.err != nil || msg.reload != tabCases {
		t.Fatalf("msg = %#v", msg)
	}
	if len(cases.created) != 1 || cases.created[0] != "2025-CV-777|civil|Doe vs. Roe" {
		t.Fatalf("created = %v", cases.created)
	}
}

func TestLiveArmBindsActingRole(t *testing.T) {
	t.Parallel()
	m, _, live := newTestModel(role.Clerk)
	live.armErr = errors.New("boom")
	next, cmd := m.executePalette("live:arm 2025-CR-001 fr")
	if next.(Model).currentTab() != tabLive {
		t.Fatalf("expected focus on live tab")
	}
	msg := cmd().(opDoneMsg)
	if live.armedBy != role.Clerk {
		t.Fatalf("armed by %v", live.armedBy)
	}
	updated, _ := next.(Model).Update(msg)
	if got := updated.(Model).status; got != "error: boom" {
		t.Fatalf("status = %q", got)
	}
}
