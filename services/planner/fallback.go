package planner

import (
	"fmt"
	"time"

	"voyago/models"
)

// Deterministic substitutes for every generation-backed stage. None of these
// touch a collaborator and none of them can fail.

// fallbackActivities derives one activity per input hit using only the hit's
// title and content, capped at fallbackActivityCap.
func fallbackActivities(hits []models.SearchHit, partyType models.PartyType) []models.Activity {
	activities := make([]models.Activity, 0, fallbackActivityCap)
	for _, hit := range hits {
		if len(activities) >= fallbackActivityCap {
			break
		}
		title := hit.Title
		if title == "" {
			title = "Activity"
		}
		activities = append(activities, models.Activity{
			Title:                title,
			Address:              "Address not available",
			PriceTier:            "Information not available",
			Duration:             "2-3 hours",
			Tags:                 []string{"sightseeing"},
			WheelchairAccessible: true,
			ChildFriendly:        partyType == models.PartyFamily,
			Description:          truncate(hit.Content, maxDescriptionChars),
		})
	}
	return activities
}

// fallbackRestaurants derives one restaurant per input hit, capped at
// fallbackRestaurantCap.
func fallbackRestaurants(hits []models.SearchHit, dietaryFilters []string) []models.Restaurant {
	restaurants := make([]models.Restaurant, 0, fallbackRestaurantCap)
	for _, hit := range hits {
		if len(restaurants) >= fallbackRestaurantCap {
			break
		}
		name := hit.Title
		if name == "" {
			name = "Restaurant"
		}
		restaurants = append(restaurants, models.Restaurant{
			Name:           name,
			Cuisine:        "Various",
			Address:        "Address not available",
			DietaryOptions: dietaryFilters,
			PriceTier:      "$$",
			Description:    truncate(hit.Content, maxDescriptionChars),
		})
	}
	return restaurants
}

// fallbackDayPlans produces one generic day per inclusive day of stay,
// capped at maxFallbackDays. Day 1 falls on the start date.
func fallbackDayPlans(start time.Time, days int, location string) []models.DayPlan {
	if days > maxFallbackDays {
		days = maxFallbackDays
	}
	plans := make([]models.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		plans = append(plans, models.DayPlan{
			Day:       i + 1,
			Date:      start.AddDate(0, 0, i).Format(dateLayout),
			Morning:   fmt.Sprintf("Morning exploration of %s. Visit local attractions and landmarks.", location),
			Afternoon: "Afternoon activities and lunch at a local restaurant.",
			Evening:   "Evening leisure time and dinner. Explore the neighborhood.",
		})
	}
	return plans
}

// fallbackChecklist returns the fixed base packing list, with family items
// appended for family trips.
func fallbackChecklist(partyType models.PartyType) []string {
	checklist := []string{
		"Comfortable walking shoes",
		"Weather-appropriate clothing",
		"Light jacket or sweater",
		"Sunscreen and sunglasses",
		"Reusable water bottle",
		"Phone charger and power adapter",
		"Camera or smartphone",
		"Travel documents and ID",
		"Medications and first aid kit",
		"Hand sanitizer and masks",
	}
	if partyType == models.PartyFamily {
		checklist = append(checklist,
			"Snacks for kids",
			"Entertainment for children",
			"Stroller or baby carrier (if needed)",
		)
	}
	return checklist
}
