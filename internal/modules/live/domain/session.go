package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "courtdesk/internal/platform/errors"
)

type State int

const (
	StateIdle State = iota
	StateArmed
	StateRecording
	StatePaused
	StateStopped
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateRecording:
		return "recording"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateSaving:
		return "saving"
	}
	return "unknown"
}

type Entry struct {
	ID           string
	Timestamp    string
	Speaker      string
	Text         string
	OriginalText string
	Confidence   int
	IsBookmarked bool
}

// Session is the in-memory transcription in progress. It holds no timers;
// callers drive it with Tick and Ingest.
type Session struct {
	State           State
	CaseNumber      string
	Language        string
	DisplayLanguage string
	Elapsed         time.Duration
	Entries         []Entry
	CurrentSpeaker  string
	Confidence      int
	fed             int
}

func (s *Session) Arm(caseNumber, language string) error {
	switch s.State {
	case StateIdle, StateArmed:
	default:
		return fmt.Errorf("%w: cannot arm while %s", apperrors.ErrInvalidTransition, s.State)
	}
	caseNumber = strings.TrimSpace(caseNumber)
	if caseNumber == "" {
		return fmt.Errorf("%w: case number is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(language) == "" {
		return fmt.Errorf("%w: capture language is required", apperrors.ErrInvalidInput)
	}
	s.State = StateArmed
	s.CaseNumber = caseNumber
	s.Language = language
	s.DisplayLanguage = language
	return nil
}

// Start locks the capture language and clears anything left in memory.
func (s *Session) Start() error {
	if s.State != StateArmed {
		return fmt.Errorf("%w: cannot start while %s", apperrors.ErrInvalidTransition, s.State)
	}
	s.State = StateRecording
	s.Elapsed = 0
	s.Entries = nil
	s.CurrentSpeaker = ""
	s.Confidence = 0
	s.fed = 0
	return nil
}

// Tick advances elapsed time. It does nothing unless recording.
func (s *Session) Tick(d time.Duration) bool {
	if s.State != StateRecording {
		return false
	}
	s.Elapsed += d
	return true
}

// NextLine reports the next unread feed line, if recording and any remain.
func (s *Session) NextLine(feed []FeedLine) (FeedLine, bool) {
	if s.State != StateRecording || s.fed >= len(feed) {
		return FeedLine{}, false
	}
	return feed[s.fed], true
}

// Ingest appends entry as the next feed line.
func (s *Session) Ingest(entry Entry) {
	s.Entries = append(s.Entries, entry)
	s.CurrentSpeaker = entry.Speaker
	s.Confidence = entry.Confidence
	s.fed++
}

func (s *Session) TogglePause() error {
	switch s.State {
	case StateRecording:
		s.State = StatePaused
	case StatePaused:
		s.State = StateRecording
	default:
		return fmt.Errorf("%w: cannot pause while %s", apperrors.ErrInvalidTransition, s.State)
	}
	return nil
}

func (s *Session) Stop() error {
	switch s.State {
	case StateRecording, StatePaused:
		s.State = StateStopped
		return nil
	}
	return fmt.Errorf("%w: cannot stop while %s", apperrors.ErrInvalidTransition, s.State)
}

// CanSave reports ErrEmptyTranscript for a stopped session with no entries.
func (s *Session) CanSave() error {
	if s.State != StateStopped {
		return fmt.Errorf("%w: cannot save while %s", apperrors.ErrInvalidTransition, s.State)
	}
	if len(s.Entries) == 0 {
		return apperrors.ErrEmptyTranscript
	}
	return nil
}

// BeginSave claims a stopped session for one save. Until FinishSave the
// session accepts no other transition.
func (s *Session) BeginSave() error {
	if err := s.CanSave(); err != nil {
		return err
	}
	s.State = StateSaving
	return nil
}

// FinishSave resets after a successful save or returns to Stopped.
func (s *Session) FinishSave(saved bool) {
	if s.State != StateSaving {
		return
	}
	if saved {
		s.Reset()
		return
	}
	s.State = StateStopped
}

func (s *Session) Discard() error {
	switch s.State {
	case StateArmed, StateStopped:
		s.Reset()
		return nil
	}
	return fmt.Errorf("%w: cannot discard while %s", apperrors.ErrInvalidTransition, s.State)
}

// Reset returns to Idle and drops everything.
func (s *Session) Reset() {
	*s = Session{}
}

func (s *Session) ToggleBookmark(entryID string) (Entry, error) {
	switch s.State {
	case StateRecording, StatePaused, StateStopped:
	default:
		return Entry{}, fmt.Errorf("%w: no live entries while %s", apperrors.ErrInvalidTransition, s.State)
	}
	for i := range s.Entries {
		if s.Entries[i].ID == entryID {
			s.Entries[i].IsBookmarked = !s.Entries[i].IsBookmarked
			return s.Entries[i], nil
		}
	}
	return Entry{}, fmt.Errorf("entry %s: %w", entryID, apperrors.ErrNotFound)
}

// Remaining is the number of feed lines not yet ingested.
func (s *Session) Remaining(feed []FeedLine) int {
	if s.State == StateIdle || s.State == StateArmed {
		return len(feed)
	}
	return len(feed) - s.fed
}

// FormatElapsed renders d as zero-padded HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// EstimateFileSize is the display-only size for n entries.
func EstimateFileSize(n int) string {
	return fmt.Sprintf("%.1f MB", float64(n)*0.1)
}

// SessionTitle is used when the case registry does not know the number.
func SessionTitle(caseNumber string) string {
	return "Court Session - " + caseNumber
}
