package service

import (
	"context"
	"sync"
	"time"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"github.com/akshaymhatre/receiptly-api/pkg/apperror"
	"github.com/google/uuid"
)

// SuggestionView is the dropdown state exposed to clients.
type SuggestionView struct {
	Candidates []entity.Customer `json:"candidates"`
	Visible    bool              `json:"visible"`
}

// FormState is a snapshot of one form session.
type FormState struct {
	SessionID   uuid.UUID           `json:"session_id"`
	Draft       entity.ReceiptDraft `json:"draft"`
	Suggestions SuggestionView      `json:"suggestions"`
}

type formSession struct {
	id          uuid.UUID
	draft       entity.ReceiptDraft
	suggestions SuggestionSession
	lastSeen    time.Time
}

// FormService owns the server-side form sessions. Each session holds exactly
// one receipt draft plus its suggestion-dropdown state, keyed by UUID, and is
// discarded after the TTL elapses without activity. All mutations on a
// session are serialized through the service mutex.
type FormService struct {
	engine   *SuggestionEngine
	receipts *ReceiptService

	mu       sync.Mutex
	sessions map[uuid.UUID]*formSession
	ttl      time.Duration
	now      func() time.Time
}

// NewFormService creates a form service and starts the session cleanup loop.
func NewFormService(engine *SuggestionEngine, receipts *ReceiptService, ttl time.Duration) *FormService {
	s := &FormService{
		engine:   engine,
		receipts: receipts,
		sessions: make(map[uuid.UUID]*formSession),
		ttl:      ttl,
		now:      time.Now,
	}

	go s.cleanupLoop(ttl / 2)

	return s
}

// Create starts a new form session. The draft's transaction date defaults to
// today's local date; every other field starts empty.
func (s *FormService) Create(ctx context.Context) *FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &formSession{
		id:       uuid.New(),
		draft:    entity.NewReceiptDraft(s.now()),
		lastSeen: s.now(),
	}
	s.sessions[session.id] = session
	return snapshot(session)
}

// Get returns the current state of a session.
func (s *FormService) Get(ctx context.Context, id uuid.UUID) (*FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return snapshot(session), nil
}

// SetField replaces the named draft field. Editing the customer name also
// recomputes the suggestion dropdown.
func (s *FormService) SetField(ctx context.Context, id uuid.UUID, field, value string) (*FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := session.draft.SetField(field, value); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	if field == entity.FieldCustomerName {
		if err := session.suggestions.OnNameChanged(ctx, s.engine, value); err != nil {
			return nil, err
		}
	}
	return snapshot(session), nil
}

// Focus re-shows previously computed suggestions when the name field
// regains focus.
func (s *FormService) Focus(ctx context.Context, id uuid.UUID) (*FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.suggestions.OnFocus()
	return snapshot(session), nil
}

// Dismiss hides the suggestion dropdown after an interaction outside the
// name field and its dropdown.
func (s *FormService) Dismiss(ctx context.Context, id uuid.UUID) (*FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.suggestions.OnOutsideInteraction()
	return snapshot(session), nil
}

// Choose adopts a suggestion as the customer name and closes the dropdown.
func (s *FormService) Choose(ctx context.Context, id uuid.UUID, name string) (*FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.suggestions.OnSuggestionChosen(name)
	session.draft.CustomerName = name
	return snapshot(session), nil
}

// Submit validates the session's draft and builds the deep link. On a
// validation failure the draft is left untouched so the user can correct
// and resubmit.
func (s *FormService) Submit(ctx context.Context, id uuid.UUID) (*ReceiptLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.receipts.GenerateLink(session.draft)
}

// lookup finds a live session and refreshes its activity timestamp.
// Callers must hold the mutex.
func (s *FormService) lookup(id uuid.UUID) (*formSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Form session")
	}
	if s.now().Sub(session.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, apperror.NewNotFoundError("Form session")
	}
	session.lastSeen = s.now()
	return session, nil
}

func snapshot(session *formSession) *FormState {
	candidates := make([]entity.Customer, len(session.suggestions.Candidates))
	copy(candidates, session.suggestions.Candidates)
	return &FormState{
		SessionID: session.id,
		Draft:     session.draft,
		Suggestions: SuggestionView{
			Candidates: candidates,
			Visible:    session.suggestions.Visible,
		},
	}
}

// cleanupLoop periodically drops sessions idle longer than the TTL.
func (s *FormService) cleanupLoop(interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *FormService) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for id, session := range s.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
