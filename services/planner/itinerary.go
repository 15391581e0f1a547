package planner

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

// synthesisInput bundles every upstream artifact the synthesizer consumes.
// Values are handed off immutably; the synthesizer reads, never writes.
type synthesisInput struct {
	Location    string
	Dates       models.TripDates
	Start       time.Time
	Days        int
	Guests      int
	PartyType   models.PartyType
	Query       string
	Preferences models.Preferences

	Activities    []models.Activity
	Restaurants   []models.Restaurant
	Weather       models.WeatherSummary
	Events        []models.SearchHit
	Accessibility []models.SearchHit
}

// synthesizeDayPlans produces one DayPlan per inclusive calendar day of the
// stay. Artifact volume fed into the prompt is hard-capped so the request
// stays inside the model's context budget. On failure or malformed output
// the deterministic fallback takes over, capped at maxFallbackDays.
func (s *DefaultPlannerService) synthesizeDayPlans(ctx context.Context, in synthesisInput) []models.DayPlan {
	logger := utils.GetLogger()

	activities := in.Activities
	if len(activities) > promptActivityCap {
		activities = activities[:promptActivityCap]
	}
	restaurants := in.Restaurants
	if len(restaurants) > promptRestaurantCap {
		restaurants = restaurants[:promptRestaurantCap]
	}

	prompt := render(dayByDayTemplate, map[string]string{
		"location":        in.Location,
		"start_date":      in.Dates.StartDate,
		"end_date":        in.Dates.EndDate,
		"nights":          strconv.Itoa(in.Days - 1),
		"party_type":      string(in.PartyType),
		"guests":          strconv.Itoa(in.Guests),
		"activities":      marshalForPrompt(activities),
		"restaurants":     marshalForPrompt(restaurants),
		"weather":         marshalForPrompt(in.Weather),
		"events":          formatSearchHits(in.Events),
		"accessibility":   formatSearchHits(in.Accessibility),
		"budget":          string(in.Preferences.Budget),
		"interests":       joinOr(in.Preferences.Interests, "general"),
		"dietary_filters": joinOr(in.Preferences.DietaryFilters, "none"),
		"mobility_needs":  joinOr(in.Preferences.MobilityNeeds, "none"),
		"user_query":      in.Query,
	})

	raw, err := s.Generator.GenerateContent(ctx, travelPlannerSystemPrompt, prompt)
	if err != nil {
		logger.Warn("itinerary synthesis call failed, using fallback", zap.Error(err))
		return fallbackDayPlans(in.Start, in.Days, in.Location)
	}

	items, valid := decodeObjectArray(raw, "day", "morning", "afternoon", "evening")
	if !valid {
		logger.Warn("itinerary synthesis returned malformed output, using fallback")
		return fallbackDayPlans(in.Start, in.Days, in.Location)
	}

	plans := make([]models.DayPlan, 0, in.Days)
	for _, item := range items {
		if len(plans) >= in.Days {
			break
		}
		day := intField(item, "day", len(plans)+1)
		date := stringField(item, "date", "")
		if date == "" {
			date = in.Start.AddDate(0, 0, day-1).Format(dateLayout)
		}
		plans = append(plans, models.DayPlan{
			Day:       day,
			Date:      date,
			Morning:   stringField(item, "morning", ""),
			Afternoon: stringField(item, "afternoon", ""),
			Evening:   stringField(item, "evening", ""),
		})
	}
	return plans
}

// marshalForPrompt renders an artifact as indented JSON for prompt
// embedding. Marshal failure degrades to an empty object.
func marshalForPrompt(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
