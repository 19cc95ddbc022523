package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"courtdesk/internal/modules/transcript/domain"
	transcriptout "courtdesk/internal/modules/transcript/port/out"
	apperrors "courtdesk/internal/platform/errors"
	"courtdesk/internal/platform/id"
	"courtdesk/internal/platform/logger"
)

// RecordService owns the persisted transcription list. It reads storage
// once, serves later reads from memory and writes the full list back on
// every mutation. Storage failures are logged and never returned.
type RecordService struct {
	idGen     id.Generator
	store     transcriptout.RecordStore
	projector transcriptout.RecordIndexProjector
	exporter  transcriptout.RecordExporter
	log       *logger.Logger

	mu        sync.Mutex
	loaded    bool
	persisted bool
	records   []domain.Record
}

func NewRecordService(idGen id.Generator, store transcriptout.RecordStore, projector transcriptout.RecordIndexProjector, exporter transcriptout.RecordExporter, log *logger.Logger) *RecordService {
	if log == nil {
		log = logger.Nop()
	}
	return &RecordService{idGen: idGen, store: store, projector: projector, exporter: exporter, log: log.With("component", "transcript")}
}

// LoadAll returns the persisted records in insertion order, or the seed
// list when storage has never been written. The seed is not persisted.
func (s *RecordService) LoadAll(ctx context.Context) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	src := s.records
	if !s.persisted {
		src = domain.SeedRecords()
	}
	out := make([]domain.Record, 0, len(src))
	for _, r := range src {
		out = append(out, r.Clone())
	}
	return out
}

// List is LoadAll filtered by case number prefix and ordered newest date
// first; records on the same date keep latest-inserted first.
func (s *RecordService) List(ctx context.Context, caseNumber string) []domain.Record {
	all := s.LoadAll(ctx)
	prefix := strings.ToLower(strings.TrimSpace(caseNumber))
	type positioned struct {
		record domain.Record
		pos    int
	}
	items := make([]positioned, 0, len(all))
	for i, r := range all {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(r.CaseNumber), prefix) {
			continue
		}
		items = append(items, positioned{record: r, pos: i})
	}
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].record.Date != items[b].record.Date {
			return items[a].record.Date > items[b].record.Date
		}
		return items[a].pos > items[b].pos
	})
	out := make([]domain.Record, len(items))
	for i, it := range items {
		out[i] = it.record
	}
	return out
}

func (s *RecordService) Get(ctx context.Context, recordID string) (domain.Record, error) {
	for _, r := range s.LoadAll(ctx) {
		if r.ID == recordID {
			return r, nil
		}
	}
	return domain.Record{}, fmt.Errorf("record %s: %w", recordID, apperrors.ErrNotFound)
}

// Append assigns a fresh id and adds record to the end of the persisted
// list. Only validation errors are returned.
func (s *RecordService) Append(ctx context.Context, record domain.Record) (domain.Record, error) {
	if record.Status == "" {
		record.Status = domain.StatusCompleted
	}
	record = record.Clone()
	record.ID = s.idGen.New()
	if err := record.Validate(); err != nil {
		return domain.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	for _, existing := range s.records {
		if existing.ID == record.ID {
			return domain.Record{}, fmt.Errorf("%w: duplicate record id %s", apperrors.ErrInvalidInput, record.ID)
		}
	}
	s.records = append(s.records, record)
	s.persisted = true
	s.persist(ctx)
	s.project(ctx, record, len(s.records)-1)
	s.log.Info("transcription record saved", "record_id", record.ID, "case_number", record.CaseNumber, "entries", len(record.Entries))
	return record.Clone(), nil
}

// Remove deletes the persisted record with recordID and reports whether
// one was removed.
func (s *RecordService) Remove(ctx context.Context, recordID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(recordID)
	if idx < 0 {
		return false
	}
	s.records = append(s.records[:idx:idx], s.records[idx+1:]...)
	s.persist(ctx)
	if s.projector != nil {
		if err := s.projector.Delete(ctx, recordID); err != nil {
			s.log.Warn("record index delete failed", "record_id", recordID, "error", err)
		}
	}
	return true
}

// ToggleBookmark flips one entry's bookmark on a persisted record.
func (s *RecordService) ToggleBookmark(ctx context.Context, recordID, entryID string) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(recordID)
	if idx < 0 {
		return domain.Entry{}, fmt.Errorf("record %s: %w", recordID, apperrors.ErrNotFound)
	}
	record := s.records[idx].Clone()
	for i := range record.Entries {
		if record.Entries[i].ID != entryID {
			continue
		}
		record.Entries[i].IsBookmarked = !record.Entries[i].IsBookmarked
		s.records[idx] = record
		s.persist(ctx)
		return record.Entries[i], nil
	}
	return domain.Entry{}, fmt.Errorf("entry %s: %w", entryID, apperrors.ErrNotFound)
}

// Reload drops the cache so the next read goes back to storage.
func (s *RecordService) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.persisted = false
	s.records = nil
}

// Search queries the index projection and maps ids back to records.
func (s *RecordService) Search(ctx context.Context, query string, limit int) ([]domain.Record, error) {
	if s.projector == nil {
		return nil, fmt.Errorf("record index is not configured")
	}
	ids, err := s.projector.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	byID := map[string]domain.Record{}
	for _, r := range s.LoadAll(ctx) {
		byID[r.ID] = r
	}
	out := make([]domain.Record, 0, len(ids))
	for _, recordID := range ids {
		if r, ok := byID[recordID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// Reindex rebuilds the projection from what LoadAll currently shows.
func (s *RecordService) Reindex(ctx context.Context) error {
	if s.projector == nil {
		return fmt.Errorf("record index is not configured")
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	for i, r := range s.LoadAll(ctx) {
		if err := s.projector.Upsert(ctx, r, i); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecordService) Export(ctx context.Context, recordID string) (string, error) {
	if s.exporter == nil {
		return "", fmt.Errorf("record exporter is not configured")
	}
	record, err := s.Get(ctx, recordID)
	if err != nil {
		return "", err
	}
	return s.exporter.Export(ctx, record)
}

func (s *RecordService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	records, found, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("read transcription records failed, treating storage as empty", "error", err)
		s.records = nil
		s.persisted = true
		return
	}
	s.records = records
	s.persisted = found
}

func (s *RecordService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.records); err != nil {
		s.log.Error("write transcription records failed", "error", err, "records", len(s.records))
	}
}

func (s *RecordService) project(ctx context.Context, record domain.Record, position int) {
	if s.projector == nil {
		return
	}
	if err := s.projector.Upsert(ctx, record, position); err != nil {
		s.log.Warn("record index upsert failed", "record_id", record.ID, "error", err)
	}
}

func (s *RecordService) indexOf(recordID string) int {
	for i, r := range s.records {
		if r.ID == recordID {
			return i
		}
	}
	return -1
}
