package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"sectionschedule/internal/domain"
)

type editorSession struct {
	mu        sync.Mutex
	id        string
	sectionID string
	builder   *ScheduleBuilder
}

func (e *editorSession) view() domain.Editor {
	ed := domain.Editor{
		ID:        e.id,
		SectionID: e.sectionID,
		Slots:     e.builder.Snapshot(),
	}
	if c, ok := e.builder.Candidate(); ok {
		ed.Candidate = &c
	}
	return ed
}

type editorService struct {
	logger         *slog.Logger
	submitter      domain.ScheduleSubmitter
	contextTimeout time.Duration

	mu      sync.Mutex
	editors map[string]*editorSession
}

// NewEditorService keeps editing sessions in memory. Each session owns its own
// ScheduleBuilder; requests on the same session are serialised.
func NewEditorService(logger *slog.Logger, submitter domain.ScheduleSubmitter, timeout time.Duration) domain.EditorService {
	return &editorService{
		logger:         logger,
		submitter:      submitter,
		contextTimeout: timeout,
		editors:        make(map[string]*editorSession),
	}
}

func (s *editorService) Open(sectionID string, seed domain.ScheduleSet) (domain.Editor, error) {
	builder := NewScheduleBuilder()
	if len(seed) > 0 {
		if err := builder.Load(seed); err != nil {
			return domain.Editor{}, err
		}
	}
	session := &editorSession{
		id:        uuid.NewString(),
		sectionID: sectionID,
		builder:   builder,
	}
	s.mu.Lock()
	s.editors[session.id] = session
	s.mu.Unlock()
	return session.view(), nil
}

func (s *editorService) Get(editorID string) (domain.Editor, error) {
	return s.with(editorID, func(*editorSession) error { return nil })
}

func (s *editorService) AddSlot(editorID string, day domain.DayOfWeek, start, end domain.TimeOfDay) (domain.Editor, error) {
	return s.with(editorID, func(e *editorSession) error {
		_, err := e.builder.AddSlot(day, start, end)
		return err
	})
}

func (s *editorService) RemoveSlot(editorID string, index int) (domain.Editor, error) {
	return s.with(editorID, func(e *editorSession) error {
		e.builder.RemoveSlot(index)
		return nil
	})
}

func (s *editorService) Reset(editorID string) (domain.Editor, error) {
	return s.with(editorID, func(e *editorSession) error {
		e.builder.Reset()
		return nil
	})
}

func (s *editorService) SetCandidate(editorID string, candidate domain.Candidate) (domain.Editor, error) {
	return s.with(editorID, func(e *editorSession) error {
		return e.builder.SetCandidate(candidate)
	})
}

func (s *editorService) CommitCandidate(editorID string) (domain.Editor, error) {
	return s.with(editorID, func(e *editorSession) error {
		_, err := e.builder.CommitCandidate()
		return err
	})
}

// Cancel discards the session and everything added to it.
func (s *editorService) Cancel(editorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.editors[editorID]; !ok {
		return domain.ErrEditorNotFound
	}
	delete(s.editors, editorID)
	return nil
}

// Submit sends a snapshot of the session to the section service. The session is closed
// only when the service accepts it, so a rejected save can be corrected and retried.
func (s *editorService) Submit(ctx context.Context, identity domain.Identity, editorID string) (domain.Editor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.lookup(editorID)
	if err != nil {
		return domain.Editor{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	submission := domain.SectionSubmission{
		SectionID: session.sectionID,
		Slots:     session.builder.Snapshot(),
	}
	if err := s.submitter.SubmitSectionSchedule(ctx, identity, submission); err != nil {
		return session.view(), fmt.Errorf("submit section %s: %w", session.sectionID, err)
	}
	s.logger.InfoContext(ctx, "section schedule submitted",
		"editor_id", session.id, "section_id", session.sectionID, "slots", len(submission.Slots))

	s.mu.Lock()
	delete(s.editors, editorID)
	s.mu.Unlock()
	return session.view(), nil
}

func (s *editorService) lookup(editorID string) (*editorSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.editors[editorID]
	if !ok {
		return nil, domain.ErrEditorNotFound
	}
	return session, nil
}

// with runs fn under the session lock and returns the resulting view. The view is
// returned even when fn fails so callers can show the unchanged set.
func (s *editorService) with(editorID string, fn func(*editorSession) error) (domain.Editor, error) {
	session, err := s.lookup(editorID)
	if err != nil {
		return domain.Editor{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	err = fn(session)
	return session.view(), err
}
