package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"courtdesk/internal/modules/document/domain"
	documentout "courtdesk/internal/modules/document/port/out"
	"courtdesk/internal/platform/clock"
	apperrors "courtdesk/internal/platform/errors"
	"courtdesk/internal/platform/id"
	"courtdesk/internal/platform/logger"
)

type SaveDocumentInput struct {
	ID         string
	Title      string
	CaseNumber string
	Kind       string
	Content    string
}

type DocumentService struct {
	clock clock.Clock
	idGen id.Generator
	store documentout.DocumentStore
	log   *logger.Logger

	mu     sync.Mutex
	loaded bool
	docs   []domain.Document
}

func NewDocumentService(clk clock.Clock, idGen id.Generator, store documentout.DocumentStore, log *logger.Logger) *DocumentService {
	if log == nil {
		log = logger.Nop()
	}
	return &DocumentService{clock: clk, idGen: idGen, store: store, log: log.With("component", "document")}
}

func (s *DocumentService) List(ctx context.Context) []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return append([]domain.Document(nil), s.docs...)
}

func (s *DocumentService) Get(ctx context.Context, docID string) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(docID)
	if idx < 0 {
		return domain.Document{}, fmt.Errorf("document %s: %w", docID, apperrors.ErrNotFound)
	}
	return s.docs[idx], nil
}

// Save creates a draft when input.ID is empty and otherwise updates that
// document. Empty fields on update keep their previous value.
func (s *DocumentService) Save(ctx context.Context, input SaveDocumentInput) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	now := s.clock.Now().UTC().Format(time.RFC3339)

	if strings.TrimSpace(input.ID) == "" {
		kind, err := domain.ParseKind(input.Kind)
		if err != nil {
			return domain.Document{}, err
		}
		doc := domain.Document{
			ID:         s.idGen.New(),
			Title:      strings.TrimSpace(input.Title),
			CaseNumber: strings.TrimSpace(input.CaseNumber),
			Kind:       kind,
			Status:     domain.StatusDraft,
			Content:    input.Content,
			UpdatedAt:  now,
		}
		if err := doc.Validate(); err != nil {
			return domain.Document{}, err
		}
		s.docs = append(s.docs, doc)
		s.persist(ctx)
		s.log.Info("document drafted", "document_id", doc.ID, "kind", string(doc.Kind))
		return doc, nil
	}

	idx := s.indexOf(input.ID)
	if idx < 0 {
		return domain.Document{}, fmt.Errorf("document %s: %w", input.ID, apperrors.ErrNotFound)
	}
	doc := s.docs[idx]
	if !doc.Editable() {
		return domain.Document{}, fmt.Errorf("%w: document %s is final", apperrors.ErrInvalidInput, doc.ID)
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		doc.Title = title
	}
	if caseNumber := strings.TrimSpace(input.CaseNumber); caseNumber != "" {
		doc.CaseNumber = caseNumber
	}
	if strings.TrimSpace(input.Kind) != "" {
		kind, err := domain.ParseKind(input.Kind)
		if err != nil {
			return domain.Document{}, err
		}
		doc.Kind = kind
	}
	if input.Content != "" {
		doc.Content = input.Content
	}
	doc.UpdatedAt = now
	if err := doc.Validate(); err != nil {
		return domain.Document{}, err
	}
	s.docs[idx] = doc
	s.persist(ctx)
	return doc, nil
}

func (s *DocumentService) Finalize(ctx context.Context, docID string) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(docID)
	if idx < 0 {
		return domain.Document{}, fmt.Errorf("document %s: %w", docID, apperrors.ErrNotFound)
	}
	if !s.docs[idx].Editable() {
		return domain.Document{}, fmt.Errorf("%w: document %s is already final", apperrors.ErrInvalidInput, docID)
	}
	s.docs[idx].Status = domain.StatusFinal
	s.docs[idx].UpdatedAt = s.clock.Now().UTC().Format(time.RFC3339)
	s.persist(ctx)
	s.log.Info("document finalized", "document_id", docID)
	return s.docs[idx], nil
}

func (s *DocumentService) Remove(ctx context.Context, docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(docID)
	if idx < 0 {
		return false
	}
	s.docs = append(s.docs[:idx:idx], s.docs[idx+1:]...)
	s.persist(ctx)
	return true
}

func (s *DocumentService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	docs, _, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("read documents failed, treating storage as empty", "error", err)
		return
	}
	s.docs = docs
}

func (s *DocumentService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.docs); err != nil {
		s.log.Error("write documents failed", "error", err, "documents", len(s.docs))
	}
}

func (s *DocumentService) indexOf(docID string) int {
	for i, d := range s.docs {
		if d.ID == docID {
			return i
		}
	}
	return -1
}
