package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	casefileout "courtdesk/internal/modules/casefile/adapter/out"
	casefileservice "courtdesk/internal/modules/casefile/service"
	casefileusecase "courtdesk/internal/modules/casefile/usecase"
	liveout "courtdesk/internal/modules/live/adapter/out"
	"courtdesk/internal/modules/live/dto"
	livein "courtdesk/internal/modules/live/port/in"
	"courtdesk/internal/modules/live/service"
	"courtdesk/internal/modules/live/usecase"
	transcriptout "courtdesk/internal/modules/transcript/adapter/out"
	transcriptservice "courtdesk/internal/modules/transcript/service"
	transcriptusecase "courtdesk/internal/modules/transcript/usecase"
	translationout "courtdesk/internal/modules/translation/adapter/out"
	translationservice "courtdesk/internal/modules/translation/service"
	translationusecase "courtdesk/internal/modules/translation/usecase"
	"courtdesk/internal/platform/clock"
	apperrors "courtdesk/internal/platform/errors"
	"courtdesk/internal/platform/id"
	"courtdesk/internal/platform/localstore"
	"courtdesk/internal/platform/role"
	"courtdesk/internal/platform/schedule"
)

var sessionStart = time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

type fixture struct {
	live    livein.Usecase
	records *transcriptservice.RecordService
	sched   *schedule.Virtual
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "courtdesk.bolt"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	sched := schedule.NewVirtual()
	clk := clock.Offset(sessionStart, sched.Now)

	translation := translationusecase.NewInteractor(translationservice.NewTranslationService(translationout.NewYAMLDictionaryStore("", nil), nil))
	records := transcriptservice.NewRecordService(id.UUID{}, transcriptout.NewLocalRecordStore(store), nil, nil, nil)
	viewer := transcriptservice.NewViewer(transcriptout.NewTranslationAdapter(translation))
	transcript := transcriptusecase.NewInteractor(records, viewer)
	cases := casefileusecase.NewInteractor(casefileservice.NewCaseService(clk, id.UUID{}, casefileout.NewLocalCaseStore(store), nil))

	bridge := liveout.NewTranscriptAdapter(transcript)
	svc := service.NewLiveService(sched, clk, id.UUID{}, liveout.NewTranslationAdapter(translation), bridge, bridge, liveout.NewCaseDirectoryAdapter(cases), service.Options{ClerkName: "Court Clerk"}, nil)
	live := usecase.NewInteractor(svc)
	t.Cleanup(live.Close)
	return fixture{live: live, records: records, sched: sched}
}

func (f fixture) start(t *testing.T, caseNumber, language string) {
	t.Helper()
	ctx := context.Background()
	if err := f.live.Arm(ctx, role.Clerk, dto.ArmInput{CaseNumber: caseNumber, Language: language}); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if err := f.live.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
}

func (f fixture) ticks(n int) {
	for i := 0; i < n; i++ {
		f.sched.Advance(time.Second)
	}
}

func TestRecordStopSaveScenario(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	f.start(t, "2025-CR-999", "en")

	f.ticks(3)
	snap, err := f.live.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap.Entries) != 1 || snap.Entries[0].Speaker != "Judge" || snap.Entries[0].Confidence != 95 {
		t.Fatalf("after 3 ticks expected first judge entry, got %+v", snap.Entries)
	}
	if snap.Elapsed != "00:00:03" || snap.CurrentSpeaker != "Judge" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	f.ticks(6)
	snap, _ = f.live.Snapshot(ctx)
	if len(snap.Entries) != 3 {
		t.Fatalf("after 9 ticks expected 3 entries, got %d", len(snap.Entries))
	}
	if snap.Entries[2].Timestamp != "10:00:09" {
		t.Fatalf("entry timestamp should follow the session clock, got %s", snap.Entries[2].Timestamp)
	}

	if err := f.live.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	f.ticks(6)
	snap, _ = f.live.Snapshot(ctx)
	if len(snap.Entries) != 3 || snap.Elapsed != "00:00:09" {
		t.Fatalf("stop should freeze entries and elapsed, got %d %s", len(snap.Entries), snap.Elapsed)
	}
	if f.sched.Pending() != 0 {
		t.Fatalf("stop should tear down both timers, %d pending", f.sched.Pending())
	}

	saved, err := f.live.Save(ctx)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.CaseTitle != "Court Session - 2025-CR-999" || saved.FileSize != "0.3 MB" || saved.Duration != "00:00:09" {
		t.Fatalf("unexpected saved record %+v", saved)
	}
	snap, _ = f.live.Snapshot(ctx)
	if snap.State != "idle" || len(snap.Entries) != 0 {
		t.Fatalf("save should return to idle, got %+v", snap)
	}

	found := false
	for _, r := range f.records.LoadAll(ctx) {
		if r.CaseNumber == "2025-CR-999" {
			found = true
			if len(r.Entries) != 3 || r.ClerkName != "Court Clerk" || r.Date != "2025-03-04" || r.Status != "completed" {
				t.Fatalf("unexpected persisted record %+v", r)
			}
		}
	}
	if !found {
		t.Fatalf("saved session missing from store")
	}
}

func TestPauseShiftsTimeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	straight := newFixture(t)
	straight.start(t, "2025-CR-999", "en")
	straight.ticks(7)
	want, _ := straight.live.Snapshot(ctx)

	paused := newFixture(t)
	paused.start(t, "2025-CR-999", "en")
	paused.sched.Advance(2500 * time.Millisecond)
	if state, err := paused.live.TogglePause(ctx); err != nil || state != "paused" {
		t.Fatalf("pause: %s %v", state, err)
	}
	paused.sched.Advance(10 * time.Second)
	mid, _ := paused.live.Snapshot(ctx)
	if mid.Elapsed != "00:00:02" || len(mid.Entries) != 0 {
		t.Fatalf("nothing should advance while paused, got %+v", mid)
	}
	if state, err := paused.live.TogglePause(ctx); err != nil || state != "recording" {
		t.Fatalf("resume: %s %v", state, err)
	}
	paused.sched.Advance(4500 * time.Millisecond)
	got, _ := paused.live.Snapshot(ctx)

	if got.Elapsed != want.Elapsed || len(got.Entries) != len(want.Entries) {
		t.Fatalf("pausing should only shift the timeline: got %s/%d want %s/%d", got.Elapsed, len(got.Entries), want.Elapsed, len(want.Entries))
	}
}

func TestSaveWithoutEntriesStaysStopped(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	f.start(t, "2025-CR-999", "en")
	f.ticks(2)
	_ = f.live.Stop(ctx)

	if _, err := f.live.Save(ctx); !errors.Is(err, apperrors.ErrEmptyTranscript) {
		t.Fatalf("expected empty transcript, got %v", err)
	}
	snap, _ := f.live.Snapshot(ctx)
	if snap.State != "stopped" {
		t.Fatalf("state should stay stopped, got %s", snap.State)
	}
	if err := f.live.Discard(ctx); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if len(f.records.LoadAll(ctx)) != 3 {
		t.Fatalf("discard must not persist anything")
	}
}

func TestArmGuards(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if err := f.live.Arm(ctx, role.Judge, dto.ArmInput{CaseNumber: "2025-CR-999", Language: "en"}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("judge must not record, got %v", err)
	}
	if err := f.live.Arm(ctx, role.Clerk, dto.ArmInput{CaseNumber: "2025-CR-999", Language: "de"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unsupported language should be rejected, got %v", err)
	}
	if err := f.live.Arm(ctx, role.Clerk, dto.ArmInput{Language: "en"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing case number should be rejected, got %v", err)
	}
	snap, _ := f.live.Snapshot(ctx)
	if snap.State != "idle" {
		t.Fatalf("rejected arm must leave idle, got %s", snap.State)
	}
	if err := f.live.Start(ctx); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("start without arming should fail, got %v", err)
	}
}

func TestCaptureAndDisplayLanguages(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	f.start(t, "2025-CR-001", "fr")
	f.ticks(24)

	snap, _ := f.live.Snapshot(ctx)
	last := snap.Entries[len(snap.Entries)-1]
	if last.Text != "Objection retenue." || last.OriginalText != "Objection sustained." {
		t.Fatalf("capture language should translate on ingest, got %+v", last)
	}

	if err := f.live.SetDisplayLanguage(ctx, "ar"); err != nil {
		t.Fatalf("set display: %v", err)
	}
	snap, _ = f.live.Snapshot(ctx)
	if snap.Entries[len(snap.Entries)-1].Text != "الاعتراض مقبول." {
		t.Fatalf("display should re-render from original, got %q", snap.Entries[len(snap.Entries)-1].Text)
	}

	entry, err := f.live.ToggleBookmark(ctx, last.ID)
	if err != nil || !entry.IsBookmarked || entry.Text != "Objection retenue." {
		t.Fatalf("bookmark should flip the stored entry, got %+v %v", entry, err)
	}

	_ = f.live.Stop(ctx)
	saved, err := f.live.Save(ctx)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.CaseTitle != "State vs. John Smith" {
		t.Fatalf("title should come from the case registry, got %q", saved.CaseTitle)
	}
	record, err := f.records.Get(ctx, saved.RecordID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.Language != "fr" || record.Entries[7].Text != "Objection retenue." || !record.Entries[7].IsBookmarked {
		t.Fatalf("stored text must stay in the capture language, got %+v", record.Entries[7])
	}
}
