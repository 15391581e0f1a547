package planner

import (
	"context"

	"voyago/utils"

	"go.uber.org/zap"
)

// buildPackingChecklist produces an ordered packing list for the trip.
// Activities are reduced to a compact tag summary before being embedded in
// the prompt. Failure or a non-array result falls back to the fixed base
// list (plus family items for family trips).
func (s *DefaultPlannerService) buildPackingChecklist(ctx context.Context, in synthesisInput) []string {
	logger := utils.GetLogger()

	prompt := render(packingChecklistTemplate, map[string]string{
		"location":           in.Location,
		"start_date":         in.Dates.StartDate,
		"end_date":           in.Dates.EndDate,
		"weather":            marshalForPrompt(in.Weather),
		"activities_summary": formatTagSummary(in.Activities),
		"party_type":         string(in.PartyType),
		"mobility_needs":     joinOr(in.Preferences.MobilityNeeds, "none"),
	})

	raw, err := s.Generator.GenerateContent(ctx, packingSystemPrompt, prompt)
	if err != nil {
		logger.Warn("packing checklist call failed, using fallback", zap.Error(err))
		return fallbackChecklist(in.PartyType)
	}

	checklist, valid := decodeStringArray(raw)
	if !valid {
		logger.Warn("packing checklist returned malformed output, using fallback")
		return fallbackChecklist(in.PartyType)
	}
	return checklist
}
