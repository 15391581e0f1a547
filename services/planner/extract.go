package planner

import (
	"context"

	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

// extractActivities converts raw POI hits into typed activities. Malformed
// generation output falls back to a deterministic per-hit derivation; an
// empty hit list yields an empty result without a generation call.
func (s *DefaultPlannerService) extractActivities(ctx context.Context, hits []models.SearchHit, partyType models.PartyType, prefs models.Preferences) []models.Activity {
	if len(hits) == 0 {
		return []models.Activity{}
	}
	logger := utils.GetLogger()

	prompt := render(activityExtractionTemplate, map[string]string{
		"search_results": formatSearchHits(hits),
		"party_type":     string(partyType),
		"interests":      joinOr(prefs.Interests, "general"),
		"mobility_needs": joinOr(prefs.MobilityNeeds, "none"),
	})

	raw, err := s.Generator.GenerateContent(ctx, activitySystemPrompt, prompt)
	if err != nil {
		logger.Warn("activity extraction call failed, using fallback", zap.Error(err))
		return fallbackActivities(hits, partyType)
	}

	items, valid := decodeObjectArray(raw, "title", "description")
	if !valid {
		logger.Warn("activity extraction returned malformed output, using fallback")
		return fallbackActivities(hits, partyType)
	}

	activities := make([]models.Activity, 0, len(items))
	for _, item := range items {
		if len(activities) >= maxActivities {
			break
		}
		activities = append(activities, models.Activity{
			Title:                stringField(item, "title", "Activity"),
			Address:              stringField(item, "address", "Address not available"),
			PriceTier:            stringField(item, "priceTier", "Information not available"),
			Duration:             stringField(item, "duration", "2-3 hours"),
			Tags:                 stringListField(item, "tags"),
			WheelchairAccessible: boolField(item, "wheelchairAccessible"),
			ChildFriendly:        boolField(item, "childFriendly"),
			Description:          truncate(stringField(item, "description", ""), maxDescriptionChars),
		})
	}
	return activities
}

// extractRestaurants converts raw restaurant hits into typed restaurants
// with the same validate-or-fallback shape as activity extraction.
func (s *DefaultPlannerService) extractRestaurants(ctx context.Context, hits []models.SearchHit, prefs models.Preferences) []models.Restaurant {
	if len(hits) == 0 {
		return []models.Restaurant{}
	}
	logger := utils.GetLogger()

	prompt := render(restaurantExtractionTemplate, map[string]string{
		"search_results":  formatSearchHits(hits),
		"dietary_filters": joinOr(prefs.DietaryFilters, "none"),
		"budget":          string(prefs.Budget),
	})

	raw, err := s.Generator.GenerateContent(ctx, restaurantSystemPrompt, prompt)
	if err != nil {
		logger.Warn("restaurant extraction call failed, using fallback", zap.Error(err))
		return fallbackRestaurants(hits, prefs.DietaryFilters)
	}

	items, valid := decodeObjectArray(raw, "name", "description")
	if !valid {
		logger.Warn("restaurant extraction returned malformed output, using fallback")
		return fallbackRestaurants(hits, prefs.DietaryFilters)
	}

	restaurants := make([]models.Restaurant, 0, len(items))
	for _, item := range items {
		if len(restaurants) >= maxRestaurants {
			break
		}
		restaurants = append(restaurants, models.Restaurant{
			Name:           stringField(item, "name", "Restaurant"),
			Cuisine:        stringField(item, "cuisine", "Various"),
			Address:        stringField(item, "address", "Address not available"),
			DietaryOptions: stringListField(item, "dietaryOptions"),
			PriceTier:      stringField(item, "priceTier", "$$"),
			Description:    truncate(stringField(item, "description", ""), maxDescriptionChars),
		})
	}
	return restaurants
}
