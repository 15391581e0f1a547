package planner

import (
	"context"
	"sync"

	"voyago/models"
)

// stubGenerator is a deterministic Generator substitute. It records every
// call so tests can assert on invocation counts and prompt contents.
type stubGenerator struct {
	mu        sync.Mutex
	response  string
	err       error
	calls     int
	systems   []string
	prompts   []string
	responses map[string]string // optional per-system-prompt responses
}

func (g *stubGenerator) GenerateContent(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.systems = append(g.systems, systemPrompt)
	g.prompts = append(g.prompts, userPrompt)
	if g.err != nil {
		return "", g.err
	}
	if g.responses != nil {
		if resp, ok := g.responses[systemPrompt]; ok {
			return resp, nil
		}
	}
	return g.response, nil
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// stubBookingRepo is a canned BookingRepository.
type stubBookingRepo struct {
	record       *models.BookingRecord
	recordErr    error
	history      []models.BookingRecord
	historyErr   error
	historyCalls int
}

func (r *stubBookingRepo) GetByID(_ context.Context, _ string) (*models.BookingRecord, error) {
	return r.record, r.recordErr
}

func (r *stubBookingRepo) GetHistoryByTravelerID(_ context.Context, _ string, _ []models.BookingStatus, _ int) ([]models.BookingRecord, error) {
	r.historyCalls++
	return r.history, r.historyErr
}

// stubSearchService returns fixed category results.
type stubSearchService struct {
	results models.SearchResults
}

func (s *stubSearchService) Aggregate(_ context.Context, _ string, _ models.TripDates, _ models.Preferences) models.SearchResults {
	return s.results
}

func makeHits(n int) []models.SearchHit {
	hits := make([]models.SearchHit, n)
	for i := range hits {
		hits[i] = models.SearchHit{
			Title:   "Place " + string(rune('A'+i)),
			URL:     "https://example.com/place",
			Content: "A well-reviewed spot visitors recommend for an afternoon.",
		}
	}
	return hits
}
