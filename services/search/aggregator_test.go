package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearcher routes canned hits (or an error) per query substring.
type stubSearcher struct {
	mu      sync.Mutex
	queries []Query
	hits    map[string][]models.SearchHit // keyed by query substring
	errFor  map[string]error
	err     error
}

func (s *stubSearcher) Search(_ context.Context, q Query) ([]models.SearchHit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}
	for sub, err := range s.errFor {
		if strings.Contains(q.Query, sub) {
			return nil, err
		}
	}
	for sub, hits := range s.hits {
		if strings.Contains(q.Query, sub) {
			return hits, nil
		}
	}
	return nil, nil
}

func (s *stubSearcher) recorded() []Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Query(nil), s.queries...)
}

func tripDates() models.TripDates {
	return models.TripDates{StartDate: "2025-11-01", EndDate: "2025-11-05"}
}

func TestAggregate_RunsAllCategories(t *testing.T) {
	searcher := &stubSearcher{hits: map[string][]models.SearchHit{
		"things to do": {{Title: "Louvre"}},
		"restaurants":  {{Title: "Green Leaf"}},
		"weather":      {{Title: "Forecast", Content: "Cloudy, 12C"}},
		"events":       {{Title: "Jazz Night"}},
		"accessible":   {{Title: "Accessible metro guide"}},
	}}
	svc := &DefaultSearchService{Searcher: searcher}

	results := svc.Aggregate(context.Background(), "Paris", tripDates(), models.Preferences{
		Interests:     []string{"museums"},
		MobilityNeeds: []string{"wheelchair"},
	})

	require.Len(t, searcher.recorded(), 5)
	assert.Equal(t, "Louvre", results.POIs[0].Title)
	assert.Equal(t, "Green Leaf", results.Restaurants[0].Title)
	assert.Equal(t, "Jazz Night", results.Events[0].Title)
	assert.Equal(t, "Accessible metro guide", results.Accessibility[0].Title)
	require.Len(t, results.Weather.Sources, 1)
	assert.Equal(t, "Forecast", results.Weather.Sources[0].Title)
}

func TestAggregate_SkipsAccessibilityWithoutMobilityNeeds(t *testing.T) {
	searcher := &stubSearcher{}
	svc := &DefaultSearchService{Searcher: searcher}

	results := svc.Aggregate(context.Background(), "Paris", tripDates(), models.Preferences{})

	assert.Len(t, searcher.recorded(), 4)
	assert.Empty(t, results.Accessibility)
}

func TestAggregate_CategoryFailureIsIsolated(t *testing.T) {
	searcher := &stubSearcher{
		hits: map[string][]models.SearchHit{
			"restaurants": {{Title: "Green Leaf"}},
		},
		errFor: map[string]error{
			"things to do": errors.New("provider 500"),
		},
	}
	svc := &DefaultSearchService{Searcher: searcher}

	results := svc.Aggregate(context.Background(), "Paris", tripDates(), models.Preferences{})

	assert.Empty(t, results.POIs, "failed category degrades to empty")
	require.Len(t, results.Restaurants, 1, "sibling categories are unaffected")
}

func TestAggregate_WeatherNeverFails(t *testing.T) {
	svc := &DefaultSearchService{Searcher: &stubSearcher{err: errors.New("network down")}}

	results := svc.Aggregate(context.Background(), "Paris", tripDates(), models.Preferences{})

	assert.Equal(t, "Information not available", results.Weather.Temperature)
	assert.Equal(t, "Unknown", results.Weather.Conditions)
	assert.Equal(t, "Check local weather forecast before departure", results.Weather.Recommendation)
	assert.Empty(t, results.Weather.Sources)
}

func TestAggregate_WeatherDefaultsWithEmptyHits(t *testing.T) {
	svc := &DefaultSearchService{Searcher: &stubSearcher{}}

	results := svc.Aggregate(context.Background(), "Paris", tripDates(), models.Preferences{})

	assert.Equal(t, "Information not available", results.Weather.Temperature)
	assert.Equal(t, "Check local weather forecast", results.Weather.Conditions)
	assert.Equal(t, "Pack layers and check weather before departure", results.Weather.Recommendation)
}

func TestCategoryQueries(t *testing.T) {
	q := poiQuery("Paris", []string{"museums", "food"})
	assert.Equal(t, "top museums food things to do in Paris attractions points of interest", q.Query)
	assert.Equal(t, poiResultCount, q.MaxResults)
	assert.Equal(t, DepthAdvanced, q.Depth)
	assert.Equal(t, poiDomains, q.IncludeDomains)

	q = poiQuery("Paris", nil)
	assert.Contains(t, q.Query, "tourist attractions")

	q = restaurantQuery("Paris", []string{"vegetarian"})
	assert.Equal(t, "best vegetarian restaurants in Paris dining food", q.Query)
	assert.Equal(t, restaurantDomains, q.IncludeDomains)

	q = restaurantQuery("Paris", nil)
	assert.Equal(t, "best restaurants in Paris dining food", q.Query)

	q = weatherQuery("Paris", tripDates())
	assert.Equal(t, "weather forecast Paris 2025-11-01 temperature conditions", q.Query)
	assert.Equal(t, DepthBasic, q.Depth)
	assert.Equal(t, weatherResultCount, q.MaxResults)

	q = eventQuery("Paris", tripDates())
	assert.Equal(t, "events festivals activities in Paris 2025-11-01 to 2025-11-05", q.Query)
	assert.Empty(t, q.IncludeDomains)

	q = accessibilityQuery("Paris", []string{"wheelchair"})
	assert.Equal(t, "wheelchair accessible attractions transportation in Paris", q.Query)
	assert.Equal(t, accessibilityResultCount, q.MaxResults)
}
