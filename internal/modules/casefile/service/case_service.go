package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"courtdesk/internal/modules/casefile/domain"
	casefileout "courtdesk/internal/modules/casefile/port/out"
	"courtdesk/internal/platform/clock"
	apperrors "courtdesk/internal/platform/errors"
	"courtdesk/internal/platform/id"
	"courtdesk/internal/platform/logger"
)

type CreateCaseInput struct {
	CaseNumber  string
	Title       string
	Type        string
	Judge       string
	NextHearing string
	Priority    string
}

// CaseService is the case registry. Unlike transcripts, the seed list is
// written to storage on the first read.
type CaseService struct {
	clock clock.Clock
	idGen id.Generator
	store casefileout.CaseStore
	log   *logger.Logger

	mu     sync.Mutex
	loaded bool
	cases  []domain.Case
}

func NewCaseService(clk clock.Clock, idGen id.Generator, store casefileout.CaseStore, log *logger.Logger) *CaseService {
	if log == nil {
		log = logger.Nop()
	}
	return &CaseService{clock: clk, idGen: idGen, store: store, log: log.With("component", "casefile")}
}

func (s *CaseService) List(ctx context.Context) []domain.Case {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return append([]domain.Case(nil), s.cases...)
}

func (s *CaseService) Get(ctx context.Context, caseNumber string) (domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(caseNumber)
	if idx < 0 {
		return domain.Case{}, fmt.Errorf("case %s: %w", caseNumber, apperrors.ErrNotFound)
	}
	return s.cases[idx], nil
}

func (s *CaseService) Create(ctx context.Context, input CreateCaseInput) (domain.Case, error) {
	caseType, err := domain.ParseType(input.Type)
	if err != nil {
		return domain.Case{}, err
	}
	priority, err := domain.ParsePriority(input.Priority)
	if err != nil {
		return domain.Case{}, err
	}
	c := domain.Case{
		ID:          s.idGen.New(),
		CaseNumber:  strings.TrimSpace(input.CaseNumber),
		Title:       strings.TrimSpace(input.Title),
		Type:        caseType,
		Status:      domain.StatusActive,
		Judge:       strings.TrimSpace(input.Judge),
		NextHearing: strings.TrimSpace(input.NextHearing),
		Priority:    priority,
		CreatedAt:   s.clock.Now().Format("2006-01-02"),
	}
	if err := c.Validate(); err != nil {
		return domain.Case{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	if s.indexOf(c.CaseNumber) >= 0 {
		return domain.Case{}, fmt.Errorf("%w: case %s already exists", apperrors.ErrInvalidInput, c.CaseNumber)
	}
	s.cases = append(s.cases, c)
	s.persist(ctx)
	s.log.Info("case created", "case_number", c.CaseNumber, "type", string(c.Type))
	return c, nil
}

func (s *CaseService) UpdateStatus(ctx context.Context, caseNumber, status string) (domain.Case, error) {
	next, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Case{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(caseNumber)
	if idx < 0 {
		return domain.Case{}, fmt.Errorf("case %s: %w", caseNumber, apperrors.ErrNotFound)
	}
	s.cases[idx].Status = next
	s.persist(ctx)
	return s.cases[idx], nil
}

func (s *CaseService) Remove(ctx context.Context, caseNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	idx := s.indexOf(caseNumber)
	if idx < 0 {
		return false
	}
	s.cases = append(s.cases[:idx:idx], s.cases[idx+1:]...)
	s.persist(ctx)
	return true
}

func (s *CaseService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	cases, found, err := s.store.Load(ctx)
	switch {
	case err != nil:
		s.log.Error("read cases failed, treating storage as empty", "error", err)
		s.cases = nil
	case !found:
		s.cases = domain.SeedCases()
		s.persist(ctx)
		s.log.Debug("case registry initialized from seed", "cases", len(s.cases))
	default:
		s.cases = cases
	}
}

func (s *CaseService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.cases); err != nil {
		s.log.Error("write cases failed", "error", err, "cases", len(s.cases))
	}
}

func (s *CaseService) indexOf(caseNumber string) int {
	for i, c := range s.cases {
		if domain.SameNumber(c.CaseNumber, caseNumber) {
			return i
		}
	}
	return -1
}
