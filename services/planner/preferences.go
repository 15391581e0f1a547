package planner

import (
	"context"

	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

// inferredPreferences is the shape the inference call is parsed into. A
// failed parse leaves it zero-valued, contributing nothing to the merge.
type inferredPreferences struct {
	Budget         models.Budget
	Interests      []string
	DietaryFilters []string
	MobilityNeeds  []string
	Reasoning      string
}

// resolvePreferences returns a Preferences value with no missing required
// field. Inference runs only when the caller left the budget unset or the
// interests empty; an already-complete preference set passes through
// untouched, without any collaborator call.
func (s *DefaultPlannerService) resolvePreferences(ctx context.Context, bctx models.BookingContext, prefs models.Preferences, query string) models.Preferences {
	budget := models.ParseBudget(string(prefs.Budget))
	if budget != models.BudgetUnknown && len(prefs.Interests) > 0 {
		return prefs
	}

	inferred := s.inferPreferences(ctx, s.fetchHistory(ctx, bctx.TravelerID), query)

	// Explicit always wins per field; interests merge by union.
	resolved := models.Preferences{
		Budget:         budget,
		Interests:      unionStrings(prefs.Interests, inferred.Interests),
		DietaryFilters: prefs.DietaryFilters,
		MobilityNeeds:  prefs.MobilityNeeds,
	}
	if resolved.Budget == models.BudgetUnknown {
		resolved.Budget = inferred.Budget
	}
	if resolved.Budget == models.BudgetUnknown {
		resolved.Budget = models.BudgetMedium
	}
	if len(resolved.DietaryFilters) == 0 {
		resolved.DietaryFilters = inferred.DietaryFilters
	}
	if len(resolved.MobilityNeeds) == 0 {
		resolved.MobilityNeeds = inferred.MobilityNeeds
	}
	return resolved
}

// fetchHistory loads the traveler's recent booking history. A missing
// traveler ID or a failed lookup degrades to an empty history.
func (s *DefaultPlannerService) fetchHistory(ctx context.Context, travelerID string) []models.BookingRecord {
	if travelerID == "" || s.BookingRepo == nil {
		return nil
	}
	history, err := s.BookingRepo.GetHistoryByTravelerID(ctx, travelerID, models.HistoryStatuses, historyLimit)
	if err != nil {
		utils.GetLogger().Warn("booking history lookup failed, inferring from query only",
			zap.String("travelerId", travelerID), zap.Error(err))
		return nil
	}
	return history
}

// inferPreferences asks the generation collaborator for a preference
// estimate. Any failure, including malformed output, yields an empty
// inference; inference is never fatal.
func (s *DefaultPlannerService) inferPreferences(ctx context.Context, history []models.BookingRecord, query string) inferredPreferences {
	logger := utils.GetLogger()

	prompt := render(preferenceInferenceTemplate, map[string]string{
		"booking_history": formatBookingHistory(history),
		"user_query":      query,
	})

	raw, err := s.Generator.GenerateContent(ctx, preferenceSystemPrompt, prompt)
	if err != nil {
		logger.Warn("preference inference call failed", zap.Error(err))
		return inferredPreferences{}
	}

	obj, valid := decodeObject(raw)
	if !valid {
		logger.Warn("preference inference returned malformed output")
		return inferredPreferences{}
	}

	return inferredPreferences{
		Budget:         models.ParseBudget(stringField(obj, "budget", "")),
		Interests:      stringListField(obj, "interests"),
		DietaryFilters: stringListField(obj, "dietaryFilters"),
		MobilityNeeds:  stringListField(obj, "mobilityNeeds"),
		Reasoning:      stringField(obj, "reasoning", ""),
	}
}

// unionStrings merges two lists preserving first-seen order, without
// duplicates.
func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, item := range list {
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
