package planner

import (
	"fmt"

	"voyago/models"
)

// assemblePlan is the pure structuring step at the end of the pipeline. It
// copies upstream artifacts into the final shape, applies the output caps
// and never fails: empty upstream structures still produce a well-formed
// plan.
func assemblePlan(planID string, in synthesisInput, days []models.DayPlan, checklist []string) *models.TravelPlan {
	activities := in.Activities
	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	restaurants := in.Restaurants
	if len(restaurants) > maxRestaurants {
		restaurants = restaurants[:maxRestaurants]
	}

	events := make([]models.Event, 0, maxEvents)
	for _, hit := range in.Events {
		if len(events) >= maxEvents {
			break
		}
		name := hit.Title
		if name == "" {
			name = "Local Event"
		}
		events = append(events, models.Event{
			Name:        name,
			URL:         hit.URL,
			Description: truncate(hit.Content, maxEventDescChars),
		})
	}

	if activities == nil {
		activities = []models.Activity{}
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	if days == nil {
		days = []models.DayPlan{}
	}
	if checklist == nil {
		checklist = []string{}
	}

	return &models.TravelPlan{
		Success:          true,
		PlanID:           planID,
		DayByDayPlan:     days,
		Activities:       activities,
		Restaurants:      restaurants,
		PackingChecklist: checklist,
		LocalContext: models.LocalContext{
			Weather: in.Weather,
			Events:  events,
			Transportation: models.Transportation{
				Recommendation: fmt.Sprintf("Research public transportation options in %s. Consider getting a local transit pass for convenience.", in.Location),
			},
		},
	}
}
