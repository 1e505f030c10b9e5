package service

import (
	"context"
	"testing"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	infraRepo "github.com/akshaymhatre/receiptly-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directory(names ...string) []entity.Customer {
	customers := make([]entity.Customer, len(names))
	for i, n := range names {
		customers[i] = entity.Customer{Position: i + 1, Name: n}
	}
	return customers
}

func newEngine(limit int, names ...string) *SuggestionEngine {
	repo := infraRepo.NewMemoryCustomerRepository(directory(names...))
	return NewSuggestionEngine(repo, limit)
}

func TestCandidates_MatchesSubstringCaseInsensitive(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar", "Anita Sharma", "ram gopal")
	ctx := context.Background()

	got, err := engine.Candidates(ctx, "RAM")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ramesh Kumar", got[0].Name)
	assert.Equal(t, "ram gopal", got[1].Name)
}

func TestCandidates_EmptyQuery(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar")

	got, err := engine.Candidates(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidates_LimitApplies(t *testing.T) {
	engine := newEngine(2, "Anand A", "Anand B", "Anand C")

	got, err := engine.Candidates(context.Background(), "anand")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSession_OnNameChanged_NonEmptyShowsDropdown(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar", "Anita Sharma")
	var s SuggestionSession

	require.NoError(t, s.OnNameChanged(context.Background(), engine, "anita"))
	assert.True(t, s.Visible)
	require.Len(t, s.Candidates, 1)
	assert.Equal(t, "Anita Sharma", s.Candidates[0].Name)
}

func TestSession_OnNameChanged_NoMatchesStillVisible(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar")
	var s SuggestionSession

	require.NoError(t, s.OnNameChanged(context.Background(), engine, "zzz"))
	assert.True(t, s.Visible)
	assert.Empty(t, s.Candidates)
}

func TestSession_OnNameChanged_EmptyClearsAndHides(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar")
	var s SuggestionSession
	require.NoError(t, s.OnNameChanged(context.Background(), engine, "ram"))

	require.NoError(t, s.OnNameChanged(context.Background(), engine, ""))
	assert.False(t, s.Visible)
	assert.Empty(t, s.Candidates)
}

func TestSession_OnFocus_ReshowsWithoutRecompute(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar")
	var s SuggestionSession
	require.NoError(t, s.OnNameChanged(context.Background(), engine, "ram"))
	s.OnOutsideInteraction()
	require.False(t, s.Visible)

	s.OnFocus()
	assert.True(t, s.Visible)
	require.Len(t, s.Candidates, 1)
}

func TestSession_OnFocus_EmptyNameStaysHidden(t *testing.T) {
	var s SuggestionSession
	s.OnFocus()
	assert.False(t, s.Visible)
}

func TestSession_OnOutsideInteraction_OnlyVisibilityChanges(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar")
	var s SuggestionSession
	require.NoError(t, s.OnNameChanged(context.Background(), engine, "ram"))

	s.OnOutsideInteraction()
	assert.False(t, s.Visible)
	assert.Equal(t, "ram", s.Name)
	assert.Len(t, s.Candidates, 1, "candidates stay in memory")
}

func TestSession_OnSuggestionChosen(t *testing.T) {
	engine := newEngine(0, "Ramesh Kumar")
	var s SuggestionSession
	require.NoError(t, s.OnNameChanged(context.Background(), engine, "ram"))

	s.OnSuggestionChosen("Ramesh Kumar")
	assert.Equal(t, "Ramesh Kumar", s.Name)
	assert.Empty(t, s.Candidates)
	assert.False(t, s.Visible)
}
