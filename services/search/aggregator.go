package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

const (
	poiResultCount           = 12
	restaurantResultCount    = 10
	weatherResultCount       = 3
	eventResultCount         = 5
	accessibilityResultCount = 5
)

var (
	poiDomains        = []string{"tripadvisor.com", "lonelyplanet.com", "timeout.com", "viator.com"}
	restaurantDomains = []string{"tripadvisor.com", "yelp.com", "timeout.com", "eater.com", "thefork.com", "happycow.net"}
	weatherDomains    = []string{"weather.com", "accuweather.com", "weatherapi.com"}
)

// DefaultSearchService implements Service. Each category runs in its own
// goroutine under a per-category timeout so a slow or failing category never
// blocks its siblings.
type DefaultSearchService struct {
	Searcher        Searcher
	CategoryTimeout time.Duration
}

func (s *DefaultSearchService) Aggregate(ctx context.Context, location string, dates models.TripDates, prefs models.Preferences) models.SearchResults {
	var (
		results models.SearchResults
		wg      sync.WaitGroup
	)

	run := func(f func(ctx context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cctx := ctx
			if s.CategoryTimeout > 0 {
				var cancel context.CancelFunc
				cctx, cancel = context.WithTimeout(ctx, s.CategoryTimeout)
				defer cancel()
			}
			f(cctx)
		}()
	}

	run(func(cctx context.Context) {
		results.POIs = s.searchCategory(cctx, "pois", poiQuery(location, prefs.Interests))
	})
	run(func(cctx context.Context) {
		results.Restaurants = s.searchCategory(cctx, "restaurants", restaurantQuery(location, prefs.DietaryFilters))
	})
	run(func(cctx context.Context) {
		results.Weather = s.searchWeather(cctx, location, dates)
	})
	run(func(cctx context.Context) {
		results.Events = s.searchCategory(cctx, "events", eventQuery(location, dates))
	})
	if len(prefs.MobilityNeeds) > 0 {
		run(func(cctx context.Context) {
			results.Accessibility = s.searchCategory(cctx, "accessibility", accessibilityQuery(location, prefs.MobilityNeeds))
		})
	}

	wg.Wait()
	return results
}

// searchCategory runs one category query, degrading to an empty list on any
// provider failure.
func (s *DefaultSearchService) searchCategory(ctx context.Context, category string, q Query) []models.SearchHit {
	hits, err := s.Searcher.Search(ctx, q)
	if err != nil {
		utils.GetLogger().Warn("search category failed",
			zap.String("category", category), zap.Error(err))
		return []models.SearchHit{}
	}
	return hits
}

// searchWeather is a degenerate category: it always produces a usable
// summary, attaching whatever raw hits the provider returned.
func (s *DefaultSearchService) searchWeather(ctx context.Context, location string, dates models.TripDates) models.WeatherSummary {
	summary := models.WeatherSummary{
		Temperature:    "Information not available",
		Conditions:     "Check local weather forecast",
		Recommendation: "Pack layers and check weather before departure",
	}

	hits, err := s.Searcher.Search(ctx, weatherQuery(location, dates))
	if err != nil {
		utils.GetLogger().Warn("weather search failed", zap.Error(err))
		summary.Conditions = "Unknown"
		summary.Recommendation = "Check local weather forecast before departure"
		return summary
	}
	summary.Sources = hits
	return summary
}

// Category query templates. Token substitution is fixed per category.

func poiQuery(location string, interests []string) Query {
	interestStr := "tourist attractions"
	if len(interests) > 0 {
		interestStr = strings.Join(interests, " ")
	}
	return Query{
		Query:          "top " + interestStr + " things to do in " + location + " attractions points of interest",
		MaxResults:     poiResultCount,
		Depth:          DepthAdvanced,
		IncludeDomains: poiDomains,
	}
}

func restaurantQuery(location string, dietaryFilters []string) Query {
	dietaryStr := ""
	if len(dietaryFilters) > 0 {
		dietaryStr = strings.Join(dietaryFilters, " ") + " "
	}
	return Query{
		Query:          "best " + dietaryStr + "restaurants in " + location + " dining food",
		MaxResults:     restaurantResultCount,
		Depth:          DepthAdvanced,
		IncludeDomains: restaurantDomains,
	}
}

func weatherQuery(location string, dates models.TripDates) Query {
	return Query{
		Query:          "weather forecast " + location + " " + dates.StartDate + " temperature conditions",
		MaxResults:     weatherResultCount,
		Depth:          DepthBasic,
		IncludeDomains: weatherDomains,
	}
}

func eventQuery(location string, dates models.TripDates) Query {
	return Query{
		Query:      "events festivals activities in " + location + " " + dates.StartDate + " to " + dates.EndDate,
		MaxResults: eventResultCount,
		Depth:      DepthAdvanced,
	}
}

func accessibilityQuery(location string, mobilityNeeds []string) Query {
	return Query{
		Query:      strings.Join(mobilityNeeds, " ") + " accessible attractions transportation in " + location,
		MaxResults: accessibilityResultCount,
		Depth:      DepthAdvanced,
	}
}
