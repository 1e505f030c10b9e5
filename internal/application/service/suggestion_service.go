package service

import (
	"context"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"github.com/akshaymhatre/receiptly-api/internal/domain/repository"
)

// SuggestionEngine produces autocomplete candidates for the customer-name
// field from the customer directory.
type SuggestionEngine struct {
	customerRepo repository.CustomerRepository
	limit        int
}

// NewSuggestionEngine creates a suggestion engine. limit caps the number of
// candidates returned per query; 0 means unbounded.
func NewSuggestionEngine(customerRepo repository.CustomerRepository, limit int) *SuggestionEngine {
	return &SuggestionEngine{customerRepo: customerRepo, limit: limit}
}

// Candidates returns the customers whose name contains query as a
// case-insensitive substring, in source-list order. An empty query yields
// no candidates.
func (e *SuggestionEngine) Candidates(ctx context.Context, query string) ([]entity.Customer, error) {
	if query == "" {
		return nil, nil
	}
	return e.customerRepo.Search(ctx, query, e.limit)
}

// Limit returns the configured result cap.
func (e *SuggestionEngine) Limit() int {
	return e.limit
}

// SuggestionSession tracks the dropdown state for one form session: the
// current name text, the candidates computed for it, and whether the
// dropdown is showing. All transitions are synchronous; callers serialize
// access.
type SuggestionSession struct {
	Name       string
	Candidates []entity.Customer
	Visible    bool
}

// OnNameChanged recomputes candidates for the new text. Empty text clears
// and hides the dropdown; any other text makes it visible, even when zero
// candidates match.
func (s *SuggestionSession) OnNameChanged(ctx context.Context, engine *SuggestionEngine, text string) error {
	s.Name = text
	if text == "" {
		s.Candidates = nil
		s.Visible = false
		return nil
	}

	candidates, err := engine.Candidates(ctx, text)
	if err != nil {
		return err
	}
	s.Candidates = candidates
	s.Visible = true
	return nil
}

// OnFocus re-shows the previously computed candidates without recomputation
// when the name field is non-empty.
func (s *SuggestionSession) OnFocus() {
	if s.Name != "" {
		s.Visible = true
	}
}

// OnOutsideInteraction hides the dropdown. Candidates stay in memory; only
// visibility changes.
func (s *SuggestionSession) OnOutsideInteraction() {
	s.Visible = false
}

// OnSuggestionChosen adopts the chosen name, clears the candidates and
// hides the dropdown.
func (s *SuggestionSession) OnSuggestionChosen(name string) {
	s.Name = name
	s.Candidates = nil
	s.Visible = false
}
