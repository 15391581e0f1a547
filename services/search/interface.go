package search

import (
	"context"

	"voyago/models"
)

// Depth selects how thorough a single web search should be.
type Depth string

const (
	DepthBasic    Depth = "basic"
	DepthAdvanced Depth = "advanced"
)

// Query is one category-specific search request.
type Query struct {
	Query          string
	MaxResults     int
	Depth          Depth
	IncludeDomains []string
}

// Searcher is the raw web-search collaborator.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]models.SearchHit, error)
}

// Service fans a trip context out to every search category and gathers the
// per-category results. Categories fail independently; Aggregate never
// returns an error.
type Service interface {
	Aggregate(ctx context.Context, location string, dates models.TripDates, prefs models.Preferences) models.SearchResults
}
