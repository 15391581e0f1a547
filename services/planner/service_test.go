package planner

import (
	"context"
	"errors"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func familyParisRequest() models.PlanRequest {
	return models.PlanRequest{
		Query: "family trip to Paris with kids",
		BookingContext: models.BookingContext{
			Location:   "Paris",
			Dates:      models.TripDates{StartDate: "2025-11-01", EndDate: "2025-11-05"},
			PartyType:  models.PartyFamily,
			Guests:     4,
			TravelerID: "t-42",
		},
		Preferences: models.Preferences{
			Budget:         models.BudgetMedium,
			Interests:      []string{"museums"},
			DietaryFilters: []string{"vegetarian"},
		},
	}
}

func TestCreateTravelPlan_AllCollaboratorsDegraded(t *testing.T) {
	// Generation is down and search finds nothing; the pipeline must still
	// return a complete, well-formed plan.
	svc := &DefaultPlannerService{
		Generator:   &stubGenerator{err: errors.New("provider unavailable")},
		SearchSvc:   &stubSearchService{},
		BookingRepo: &stubBookingRepo{},
	}

	plan, err := svc.CreateTravelPlan(context.Background(), familyParisRequest())

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.True(t, plan.Success)
	assert.NotEmpty(t, plan.PlanID)

	require.Len(t, plan.DayByDayPlan, 5, "Nov 1 through Nov 5 is five inclusive days")
	assert.Equal(t, "2025-11-01", plan.DayByDayPlan[0].Date)
	assert.Equal(t, "2025-11-05", plan.DayByDayPlan[4].Date)

	assert.Empty(t, plan.Activities)
	assert.NotNil(t, plan.Activities)
	assert.Empty(t, plan.Restaurants)
	assert.NotNil(t, plan.Restaurants)

	require.Len(t, plan.PackingChecklist, 13)
	assert.Contains(t, plan.PackingChecklist, "Comfortable walking shoes")
	assert.Contains(t, plan.PackingChecklist, "Snacks for kids")

	assert.Contains(t, plan.LocalContext.Transportation.Recommendation, "Paris")
}

func TestCreateTravelPlan_HappyPath(t *testing.T) {
	gen := &stubGenerator{responses: map[string]string{
		activitySystemPrompt:   `[{"title": "Louvre", "description": "Art", "tags": ["museum"]}]`,
		restaurantSystemPrompt: `[{"name": "Green Leaf", "description": "Veg", "dietaryOptions": ["vegetarian"]}]`,
		travelPlannerSystemPrompt: `[
			{"day": 1, "date": "2025-11-01", "morning": "Louvre", "afternoon": "Lunch", "evening": "Stroll"},
			{"day": 2, "date": "2025-11-02", "morning": "Orsay", "afternoon": "Park", "evening": "Dinner"},
			{"day": 3, "date": "2025-11-03", "morning": "Market", "afternoon": "Cafe", "evening": "Show"},
			{"day": 4, "date": "2025-11-04", "morning": "Versailles", "afternoon": "Gardens", "evening": "Rest"},
			{"day": 5, "date": "2025-11-05", "morning": "Shopping", "afternoon": "Walk", "evening": "Pack"}
		]`,
		packingSystemPrompt: `["Walking shoes", "Rain jacket"]`,
	}}
	search := &stubSearchService{results: models.SearchResults{
		POIs:        makeHits(4),
		Restaurants: makeHits(3),
		Weather:     models.WeatherSummary{Temperature: "10C", Conditions: "Cloudy", Recommendation: "Pack layers"},
		Events:      []models.SearchHit{{Title: "Jazz Night", URL: "https://e", Content: "Live music"}},
	}}
	svc := &DefaultPlannerService{Generator: gen, SearchSvc: search, BookingRepo: &stubBookingRepo{}}

	plan, err := svc.CreateTravelPlan(context.Background(), familyParisRequest())

	require.NoError(t, err)
	require.Len(t, plan.DayByDayPlan, 5)
	require.Len(t, plan.Activities, 1)
	assert.Equal(t, "Louvre", plan.Activities[0].Title)
	require.Len(t, plan.Restaurants, 1)
	assert.Equal(t, "Green Leaf", plan.Restaurants[0].Name)
	assert.Equal(t, []string{"Walking shoes", "Rain jacket"}, plan.PackingChecklist)
	require.Len(t, plan.LocalContext.Events, 1)
	assert.Equal(t, "Jazz Night", plan.LocalContext.Events[0].Name)
	assert.Equal(t, "Cloudy", plan.LocalContext.Weather.Conditions)
}

func TestCreateTravelPlan_BookingOverridesContext(t *testing.T) {
	repo := &stubBookingRepo{record: &models.BookingRecord{
		ID:         "b-7",
		TravelerID: "t-stored",
		City:       "Lyon",
		StartDate:  "2025-12-01",
		EndDate:    "2025-12-03",
		Guests:     2,
		Status:     models.BookingAccepted,
	}}
	svc := &DefaultPlannerService{
		Generator:   &stubGenerator{err: errors.New("down")},
		SearchSvc:   &stubSearchService{},
		BookingRepo: repo,
	}

	req := familyParisRequest()
	req.BookingContext.BookingID = "b-7"

	plan, err := svc.CreateTravelPlan(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, plan.DayByDayPlan, 3, "stored booking dates win over the request context")
	assert.Equal(t, "2025-12-01", plan.DayByDayPlan[0].Date)
	assert.Contains(t, plan.LocalContext.Transportation.Recommendation, "Lyon")
}

func TestCreateTravelPlan_BookingLookupFailureUsesRequestContext(t *testing.T) {
	svc := &DefaultPlannerService{
		Generator:   &stubGenerator{err: errors.New("down")},
		SearchSvc:   &stubSearchService{},
		BookingRepo: &stubBookingRepo{recordErr: errors.New("db down")},
	}

	req := familyParisRequest()
	req.BookingContext.BookingID = "b-missing"

	plan, err := svc.CreateTravelPlan(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, plan.DayByDayPlan, 5)
	assert.Contains(t, plan.LocalContext.Transportation.Recommendation, "Paris")
}

func TestCreateTravelPlan_InvalidDates(t *testing.T) {
	svc := &DefaultPlannerService{
		Generator: &stubGenerator{},
		SearchSvc: &stubSearchService{},
	}

	req := familyParisRequest()
	req.BookingContext.Dates = models.TripDates{StartDate: "2025-11-05", EndDate: "2025-11-01"}

	plan, err := svc.CreateTravelPlan(context.Background(), req)

	require.Nil(t, plan)
	var planErr *PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, CodeInvalidDates, planErr.Code)
}

func TestCreateTravelPlan_CancelledContext(t *testing.T) {
	svc := &DefaultPlannerService{
		Generator: &stubGenerator{err: errors.New("down")},
		SearchSvc: &stubSearchService{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, err := svc.CreateTravelPlan(ctx, familyParisRequest())

	require.Nil(t, plan)
	var planErr *PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, CodePlanTimeout, planErr.Code)
}

func TestCreateTravelPlan_ZeroGuestsDefaultsToOne(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	svc := &DefaultPlannerService{Generator: gen, SearchSvc: &stubSearchService{}}

	req := familyParisRequest()
	req.BookingContext.Guests = 0

	plan, err := svc.CreateTravelPlan(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, plan.Success)
}
