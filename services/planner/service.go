package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateTravelPlan runs the itinerary synthesis pipeline:
// preference resolution, category search fan-out, parallel activity and
// restaurant extraction, day-by-day synthesis, packing checklist and final
// assembly. Every generation-backed stage degrades to its deterministic
// fallback; only conditions with no fallback (bad dates, overall timeout)
// surface as an error.
func (s *DefaultPlannerService) CreateTravelPlan(ctx context.Context, req models.PlanRequest) (*models.TravelPlan, error) {
	logger := utils.GetLogger()
	planID := uuid.New().String()

	location := req.BookingContext.Location
	dates := req.BookingContext.Dates
	partyType := models.ParsePartyType(string(req.BookingContext.PartyType))
	guests := req.BookingContext.Guests
	if guests < 1 {
		guests = 1
	}
	travelerID := req.BookingContext.TravelerID

	// The stored booking record is authoritative for location, dates and
	// guest count when it resolves; a miss or a lookup failure is not.
	if req.BookingContext.BookingID != "" && s.BookingRepo != nil {
		record, err := s.BookingRepo.GetByID(ctx, req.BookingContext.BookingID)
		switch {
		case err != nil:
			logger.Warn("booking lookup failed, using request context",
				zap.String("planId", planID), zap.String("bookingId", req.BookingContext.BookingID), zap.Error(err))
		case record == nil:
			logger.Warn("booking not found, using request context",
				zap.String("planId", planID), zap.String("bookingId", req.BookingContext.BookingID))
		default:
			if record.City != "" {
				location = record.City
			}
			if record.StartDate != "" && record.EndDate != "" {
				dates = models.TripDates{StartDate: record.StartDate, EndDate: record.EndDate}
			}
			if record.Guests > 0 {
				guests = record.Guests
			}
			if travelerID == "" {
				travelerID = record.TravelerID
			}
		}
	}

	start, days, err := tripLength(dates)
	if err != nil {
		return nil, err
	}

	logger.Info("starting travel plan generation",
		zap.String("planId", planID),
		zap.String("location", location),
		zap.String("startDate", dates.StartDate),
		zap.String("endDate", dates.EndDate),
		zap.Int("days", days))

	bctx := req.BookingContext
	bctx.TravelerID = travelerID
	prefs := s.resolvePreferences(ctx, bctx, req.Preferences, req.Query)

	results := s.SearchSvc.Aggregate(ctx, location, dates, prefs)
	if ctx.Err() != nil {
		return nil, NewTimeoutError()
	}

	// Activity and restaurant extraction have no data dependency on each
	// other; both must finish before synthesis.
	var (
		activities  []models.Activity
		restaurants []models.Restaurant
		wg          sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		activities = s.extractActivities(ctx, results.POIs, partyType, prefs)
	}()
	go func() {
		defer wg.Done()
		restaurants = s.extractRestaurants(ctx, results.Restaurants, prefs)
	}()
	wg.Wait()
	if ctx.Err() != nil {
		return nil, NewTimeoutError()
	}

	in := synthesisInput{
		Location:      location,
		Dates:         dates,
		Start:         start,
		Days:          days,
		Guests:        guests,
		PartyType:     partyType,
		Query:         req.Query,
		Preferences:   prefs,
		Activities:    activities,
		Restaurants:   restaurants,
		Weather:       results.Weather,
		Events:        results.Events,
		Accessibility: results.Accessibility,
	}

	dayPlans := s.synthesizeDayPlans(ctx, in)
	checklist := s.buildPackingChecklist(ctx, in)
	if ctx.Err() != nil {
		return nil, NewTimeoutError()
	}

	plan := assemblePlan(planID, in, dayPlans, checklist)
	logger.Info("travel plan generated",
		zap.String("planId", planID),
		zap.Int("days", len(plan.DayByDayPlan)),
		zap.Int("activities", len(plan.Activities)),
		zap.Int("restaurants", len(plan.Restaurants)),
		zap.Int("packingItems", len(plan.PackingChecklist)))
	return plan, nil
}

// tripLength parses the stay window and returns the start date plus the
// inclusive day count (nights + 1). Day 1 corresponds to the start date.
func tripLength(dates models.TripDates) (time.Time, int, error) {
	start, err := time.Parse(dateLayout, dates.StartDate)
	if err != nil {
		return time.Time{}, 0, NewInvalidDatesError(fmt.Sprintf("invalid start date %q", dates.StartDate))
	}
	end, err := time.Parse(dateLayout, dates.EndDate)
	if err != nil {
		return time.Time{}, 0, NewInvalidDatesError(fmt.Sprintf("invalid end date %q", dates.EndDate))
	}
	if end.Before(start) {
		return time.Time{}, 0, NewInvalidDatesError("end date precedes start date")
	}
	nights := int(end.Sub(start).Hours() / 24)
	return start, nights + 1, nil
}
