package models

// Budget is the closed set of spending levels a traveler can express.
type Budget string

const (
	BudgetLow     Budget = "low"
	BudgetMedium  Budget = "medium"
	BudgetHigh    Budget = "high"
	BudgetUnknown Budget = ""
)

// ParseBudget normalizes free-form budget text into a known level.
// Anything unrecognized maps to BudgetUnknown so callers can apply defaults.
func ParseBudget(s string) Budget {
	switch Budget(s) {
	case BudgetLow, BudgetMedium, BudgetHigh:
		return Budget(s)
	}
	return BudgetUnknown
}

// PartyType describes who is traveling.
type PartyType string

const (
	PartySolo    PartyType = "solo"
	PartyCouple  PartyType = "couple"
	PartyFamily  PartyType = "family"
	PartyFriends PartyType = "friends"
	PartyOther   PartyType = "other"
)

func ParsePartyType(s string) PartyType {
	switch PartyType(s) {
	case PartySolo, PartyCouple, PartyFamily, PartyFriends:
		return PartyType(s)
	}
	return PartyOther
}

// TripDates holds the inclusive stay window in "YYYY-MM-DD" form.
type TripDates struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// BookingContext carries the trip context supplied by the caller. When a
// booking ID resolves to a stored record, the record's city, dates and guest
// count take precedence over the values given here.
type BookingContext struct {
	BookingID  string    `json:"bookingId,omitempty"`
	TravelerID string    `json:"travelerId,omitempty"`
	PropertyID string    `json:"propertyId,omitempty"`
	Location   string    `json:"location" binding:"required"`
	Dates      TripDates `json:"dates" binding:"required"`
	PartyType  PartyType `json:"partyType"`
	Guests     int       `json:"guests"`
}

// Preferences holds traveler preferences. The planner resolves missing
// fields exactly once before any downstream stage reads them.
type Preferences struct {
	Budget         Budget   `json:"budget"`
	Interests      []string `json:"interests"`
	DietaryFilters []string `json:"dietaryFilters"`
	MobilityNeeds  []string `json:"mobilityNeeds"`
}

// PlanRequest is the validated input to the planner pipeline.
type PlanRequest struct {
	Query          string         `json:"query" binding:"required"`
	BookingContext BookingContext `json:"bookingContext" binding:"required"`
	Preferences    Preferences    `json:"preferences"`
}

// Activity is one recommended thing to do at the destination.
type Activity struct {
	Title                string   `json:"title"`
	Address              string   `json:"address"`
	PriceTier            string   `json:"priceTier"`
	Duration             string   `json:"duration"`
	Tags                 []string `json:"tags"`
	WheelchairAccessible bool     `json:"wheelchairAccessible"`
	ChildFriendly        bool     `json:"childFriendly"`
	Description          string   `json:"description"`
}

// Restaurant is one recommended place to eat.
type Restaurant struct {
	Name           string   `json:"name"`
	Cuisine        string   `json:"cuisine"`
	Address        string   `json:"address"`
	DietaryOptions []string `json:"dietaryOptions"`
	PriceTier      string   `json:"priceTier"`
	Description    string   `json:"description"`
}

// DayPlan is one inclusive calendar day of the itinerary. Day 1 corresponds
// to the stay's start date.
type DayPlan struct {
	Day       int    `json:"day"`
	Date      string `json:"date"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// WeatherSummary is a best-effort forecast digest. It is always present in
// the final plan even when the weather search returned nothing.
type WeatherSummary struct {
	Temperature    string      `json:"temperature"`
	Conditions     string      `json:"conditions"`
	Recommendation string      `json:"recommendation"`
	Sources        []SearchHit `json:"rawResults,omitempty"`
}

// Event is the minimal projection of a local happening during the stay.
type Event struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Transportation carries the static getting-around tip for the destination.
type Transportation struct {
	Recommendation string `json:"recommendation"`
}

// LocalContext groups destination-level information alongside the itinerary.
type LocalContext struct {
	Weather        WeatherSummary `json:"weather"`
	Events         []Event        `json:"events"`
	Transportation Transportation `json:"transportation"`
}

// TravelPlan is the final artifact returned to the caller. List lengths are
// part of the output contract: at most 20 activities, 15 restaurants and 5
// events regardless of upstream volume.
type TravelPlan struct {
	Success          bool         `json:"success"`
	PlanID           string       `json:"planId"`
	DayByDayPlan     []DayPlan    `json:"dayByDayPlan"`
	Activities       []Activity   `json:"activities"`
	Restaurants      []Restaurant `json:"restaurants"`
	PackingChecklist []string     `json:"packingChecklist"`
	LocalContext     LocalContext `json:"localContext"`
}
