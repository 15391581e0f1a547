package planner

import (
	"context"

	bookingRepo "voyago/database/repository/booking"
	ai "voyago/services/intelligence"
	"voyago/services/search"

	"voyago/models"
)

const dateLayout = "2006-01-02"

// Output contract caps and prompt budgets. The output caps are part of the
// published contract, not a tuning knob.
const (
	maxActivities  = 20
	maxRestaurants = 15
	maxEvents      = 5

	fallbackActivityCap   = 10
	fallbackRestaurantCap = 8
	maxFallbackDays       = 7

	promptActivityCap   = 15
	promptRestaurantCap = 10

	maxHitsPerPrompt    = 10
	maxHitBlockChars    = 3000
	maxHitContentChars  = 200
	maxDescriptionChars = 150
	maxEventDescChars   = 200
	maxTagSummary       = 10

	historyLimit = 10
)

// PlannerService turns a validated plan request into a complete travel plan.
type PlannerService interface {
	CreateTravelPlan(ctx context.Context, req models.PlanRequest) (*models.TravelPlan, error)
}

// DefaultPlannerService implements PlannerService. All collaborators are
// injected, stateless capabilities; tests substitute deterministic stubs.
type DefaultPlannerService struct {
	Generator   ai.Generator
	SearchSvc   search.Service
	BookingRepo bookingRepo.BookingRepository
}
