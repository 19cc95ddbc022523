package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"courtdesk/internal/modules/live/domain"
	liveout "courtdesk/internal/modules/live/port/out"
	"courtdesk/internal/platform/clock"
	apperrors "courtdesk/internal/platform/errors"
	"courtdesk/internal/platform/id"
	"courtdesk/internal/platform/logger"
	"courtdesk/internal/platform/schedule"
)

type Options struct {
	ClerkName      string
	TickInterval   time.Duration
	IngestInterval time.Duration
}

type Snapshot struct {
	State           domain.State
	CaseNumber      string
	Language        string
	DisplayLanguage string
	Elapsed         string
	Entries         []domain.Entry
	CurrentSpeaker  string
	Confidence      int
	Remaining       int
}

// LiveService owns one in-memory session and the two periodic tasks that
// drive it. Timer callbacks and user actions share mu.
type LiveService struct {
	sched      schedule.Scheduler
	clock      clock.Clock
	idGen      id.Generator
	translator liveout.Translator
	renderer   liveout.Renderer
	sink       liveout.RecordSink
	cases      liveout.CaseDirectory
	opts       Options
	log        *logger.Logger
	feed       []domain.FeedLine

	// ctlMu serializes task pause/resume, which must run without mu held.
	ctlMu      sync.Mutex
	mu         sync.Mutex
	session    domain.Session
	clockTask  schedule.Task
	ingestTask schedule.Task
}

func NewLiveService(sched schedule.Scheduler, clk clock.Clock, idGen id.Generator, translator liveout.Translator, renderer liveout.Renderer, sink liveout.RecordSink, cases liveout.CaseDirectory, opts Options, log *logger.Logger) *LiveService {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.IngestInterval <= 0 {
		opts.IngestInterval = 3 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LiveService{
		sched:      sched,
		clock:      clk,
		idGen:      idGen,
		translator: translator,
		renderer:   renderer,
		sink:       sink,
		cases:      cases,
		opts:       opts,
		log:        log.With("component", "live"),
		feed:       domain.MockFeed(),
	}
}

func (s *LiveService) Arm(ctx context.Context, caseNumber, language string) error {
	if language != "" && !s.translator.Supports(ctx, language) {
		return fmt.Errorf("%w: unsupported capture language %q", apperrors.ErrInvalidInput, language)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Arm(caseNumber, language)
}

func (s *LiveService) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Start(); err != nil {
		return err
	}
	s.clockTask = s.sched.Every(s.opts.TickInterval, s.onTick)
	s.ingestTask = s.sched.Every(s.opts.IngestInterval, s.onIngest)
	s.log.Info("live session started", "case_number", s.session.CaseNumber, "language", s.session.Language)
	return nil
}

// TogglePause keeps the tasks and the session in step: tasks are paused
// before the session leaves Recording and resumed only after it returns, so
// no firing is spent while paused.
func (s *LiveService) TogglePause(_ context.Context) (domain.State, error) {
	s.ctlMu.Lock()
	defer s.ctlMu.Unlock()

	s.mu.Lock()
	current := s.session.State
	tasks := []schedule.Task{s.clockTask, s.ingestTask}
	s.mu.Unlock()

	if current == domain.StateRecording {
		for _, t := range tasks {
			if t != nil {
				t.Pause()
			}
		}
	}

	s.mu.Lock()
	err := s.session.TogglePause()
	state := s.session.State
	s.mu.Unlock()
	if err != nil {
		return state, err
	}

	if state == domain.StateRecording {
		for _, t := range tasks {
			if t != nil {
				t.Resume()
			}
		}
	}
	return state, nil
}

func (s *LiveService) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Stop(); err != nil {
		return err
	}
	s.stopTasks()
	s.log.Info("live session stopped", "case_number", s.session.CaseNumber, "entries", len(s.session.Entries), "elapsed", domain.FormatElapsed(s.session.Elapsed))
	return nil
}

// Save persists a stopped session and returns to Idle. While the sink
// runs the session is Saving, so a second Save is rejected. On failure the
// session goes back to Stopped so the user can retry or discard.
func (s *LiveService) Save(ctx context.Context) (liveout.SavedRecord, error) {
	s.mu.Lock()
	if err := s.session.BeginSave(); err != nil {
		s.mu.Unlock()
		return liveout.SavedRecord{}, err
	}
	pending := liveout.PendingRecord{
		CaseNumber: s.session.CaseNumber,
		Date:       s.clock.Now().Format("2006-01-02"),
		Duration:   domain.FormatElapsed(s.session.Elapsed),
		Language:   s.session.Language,
		ClerkName:  s.opts.ClerkName,
		FileSize:   domain.EstimateFileSize(len(s.session.Entries)),
		Entries:    append([]domain.Entry(nil), s.session.Entries...),
	}
	s.mu.Unlock()

	pending.CaseTitle = domain.SessionTitle(pending.CaseNumber)
	if s.cases != nil {
		if title, ok := s.cases.Title(ctx, pending.CaseNumber); ok {
			pending.CaseTitle = title
		}
	}
	saved, err := s.sink.Append(ctx, pending)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.FinishSave(err == nil)
	if err != nil {
		s.log.Error("live session save failed", "case_number", pending.CaseNumber, "error", err)
		return liveout.SavedRecord{}, err
	}
	s.log.Info("live session saved", "record_id", saved.ID, "case_number", saved.CaseNumber)
	return saved, nil
}

func (s *LiveService) Discard(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Discard(); err != nil {
		return err
	}
	s.stopTasks()
	return nil
}

func (s *LiveService) ToggleBookmark(_ context.Context, entryID string) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ToggleBookmark(entryID)
}

func (s *LiveService) SetDisplayLanguage(ctx context.Context, language string) error {
	if !s.translator.Supports(ctx, language) {
		return fmt.Errorf("%w: unsupported display language %q", apperrors.ErrInvalidInput, language)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.State == domain.StateIdle {
		return fmt.Errorf("%w: no live session", apperrors.ErrInvalidTransition)
	}
	s.session.DisplayLanguage = language
	return nil
}

// Snapshot copies the session and renders its entries for the current
// display language. Stored entries are left as ingested.
func (s *LiveService) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	snap := Snapshot{
		State:           s.session.State,
		CaseNumber:      s.session.CaseNumber,
		Language:        s.session.Language,
		DisplayLanguage: s.session.DisplayLanguage,
		Elapsed:         domain.FormatElapsed(s.session.Elapsed),
		Entries:         append([]domain.Entry(nil), s.session.Entries...),
		CurrentSpeaker:  s.session.CurrentSpeaker,
		Confidence:      s.session.Confidence,
		Remaining:       s.session.Remaining(s.feed),
	}
	s.mu.Unlock()

	if len(snap.Entries) > 0 && snap.DisplayLanguage != "" && snap.DisplayLanguage != snap.Language {
		rendered, err := s.renderer.Render(ctx, snap.Entries, snap.DisplayLanguage)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Entries = rendered
	}
	return snap, nil
}

// Close tears down any running timers. The session itself is abandoned.
func (s *LiveService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTasks()
}

func (s *LiveService) onTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Tick(s.opts.TickInterval)
}

func (s *LiveService) onIngest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.session.NextLine(s.feed)
	if !ok {
		return
	}
	ctx := context.Background()
	s.session.Ingest(domain.Entry{
		ID:           s.idGen.New(),
		Timestamp:    s.clock.Now().Format("15:04:05"),
		Speaker:      line.Speaker,
		Text:         s.translator.Translate(ctx, line.Text, s.session.Language),
		OriginalText: line.Text,
		Confidence:   line.Confidence,
	})
	s.log.Debug("live entry ingested", "speaker", line.Speaker, "entries", len(s.session.Entries))
}

func (s *LiveService) stopTasks() {
	if s.clockTask != nil {
		s.clockTask.Stop()
		s.clockTask = nil
	}
	if s.ingestTask != nil {
		s.ingestTask.Stop()
		s.ingestTask = nil
	}
}
