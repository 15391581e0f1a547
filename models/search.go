package models

// SearchHit is a single raw web-search result. Content is externally
// supplied free text of untrusted length; consumers truncate as needed.
type SearchHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchResults groups the per-category hit lists the planner consumes.
// Categories fail independently; a failed category is simply empty here.
type SearchResults struct {
	POIs          []SearchHit
	Restaurants   []SearchHit
	Weather       WeatherSummary
	Events        []SearchHit
	Accessibility []SearchHit
}
