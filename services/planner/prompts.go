package planner

import (
	"fmt"
	"strings"

	"voyago/models"
)

// Per-stage system prompts. Each generation-backed stage pins its own.
const (
	travelPlannerSystemPrompt = `You are an expert AI travel concierge assistant specializing in creating personalized travel itineraries.

Your role is to:
1. Analyze the traveler's booking context (location, dates, party type)
2. Consider their preferences (budget, interests, dietary restrictions, mobility needs)
3. Use real-time local information (POIs, restaurants, weather, events)
4. Generate a comprehensive, day-by-day travel plan

Guidelines:
- Create realistic, achievable daily schedules
- Consider travel time between locations
- Balance activities with rest time
- Account for meal times
- Flag wheelchair-accessible and child-friendly activities
- Filter restaurants by dietary requirements
- Include local events happening during the stay`

	activitySystemPrompt   = "You are a travel data extraction expert. Return only valid JSON."
	restaurantSystemPrompt = "You are a restaurant data extraction expert. Return only valid JSON."
	packingSystemPrompt    = "You are a travel packing expert. Return a JSON array of packing items."
	preferenceSystemPrompt = "You are a travel preference analyst. Return only valid JSON."
)

const activityExtractionTemplate = `Based on the POI search results, extract and structure activity information.

For each activity, provide:
- title: Activity name
- address: Full address (or "Address not available")
- duration: Estimated time needed (e.g., "2-3 hours")
- priceTier: Estimated price tier (Free, $, $$, $$$, $$$$)
- description: Brief description (150 characters max)
- tags: Array of relevant tags (museum, outdoor, family, romantic, culture, food, nature, adventure, etc.)
- wheelchairAccessible: true/false based on available information
- childFriendly: true/false based on activity type

Search Results:
{search_results}

Party Type: {party_type}
Interests: {interests}
Mobility Needs: {mobility_needs}

Extract and structure the activities as a JSON array. Return valid JSON only.

Example format:
[
  {
    "title": "Museum of Modern Art",
    "address": "123 Main St",
    "duration": "2-3 hours",
    "priceTier": "$$",
    "description": "World-class art museum",
    "tags": ["museum", "culture", "indoor"],
    "wheelchairAccessible": true,
    "childFriendly": true
  }
]`

const restaurantExtractionTemplate = `Based on the restaurant search results, extract and structure restaurant information.

For each restaurant, provide:
- name: Restaurant name
- cuisine: Type of cuisine
- address: Full address (or "Address not available")
- priceTier: Price range ($ to $$$$)
- dietaryOptions: Array of dietary options (vegetarian, vegan, gluten-free, halal, kosher, none)
- description: Brief description highlighting dietary accommodations and ambiance (150 characters max)

Search Results:
{search_results}

Dietary Filters: {dietary_filters}
Budget: {budget}

Filter and prioritize restaurants that match the dietary requirements and budget.
Return as a valid JSON array only.

Example format:
[
  {
    "name": "Green Leaf Bistro",
    "cuisine": "Contemporary Vegetarian",
    "address": "456 Oak Ave",
    "priceTier": "$$",
    "dietaryOptions": ["vegetarian", "vegan", "gluten-free"],
    "description": "Farm-to-table vegetarian restaurant with vegan options"
  }
]`

const dayByDayTemplate = `Create a detailed day-by-day itinerary for the trip.

Trip Details:
- Location: {location}
- Start Date: {start_date}
- End Date: {end_date}
- Duration: {nights} nights
- Party Type: {party_type}
- Number of Guests: {guests}

Available Activities:
{activities}

Available Restaurants:
{restaurants}

Weather:
{weather}

Local Events:
{events}

Accessibility Notes:
{accessibility}

User Preferences:
- Budget: {budget}
- Interests: {interests}
- Dietary Restrictions: {dietary_filters}
- Mobility Needs: {mobility_needs}

User Query (free text):
{user_query}

Create a day-by-day plan with:
- day: Day number (1, 2, 3, etc.)
- date: Date in YYYY-MM-DD format
- morning: Morning activities (8am-12pm) with specific recommendations
- afternoon: Afternoon activities (12pm-6pm) with lunch and sightseeing
- evening: Evening activities (6pm-10pm) with dinner recommendations

Consider travel time between locations, meal times, rest periods for
families with children, weather conditions, local events, opening hours
and accessibility requirements.

Return as a valid JSON array only.

Example format:
[
  {
    "day": 1,
    "date": "2025-11-17",
    "morning": "Start with breakfast at Green Leaf Bistro, then visit Museum of Modern Art",
    "afternoon": "Lunch at downtown cafe, explore historic district",
    "evening": "Dinner at waterfront restaurant, evening stroll"
  }
]`

const packingChecklistTemplate = `Generate a weather-aware packing checklist.

Trip Details:
- Location: {location}
- Start Date: {start_date}
- End Date: {end_date}
- Weather: {weather}
- Activities: {activities_summary}
- Party Type: {party_type}
- Mobility Needs: {mobility_needs}

Generate a comprehensive packing list that includes:
- Weather-appropriate clothing (based on temperature and conditions)
- Activity-specific items (based on planned activities)
- Travel essentials
- Electronics and adapters
- Health and safety items
- Items for children (if family trip)
- Mobility aids (if needed)

Return as a JSON array of strings with practical recommendations.

Example format:
[
  "Comfortable walking shoes",
  "Light jacket (temperatures 60-70F)",
  "Umbrella or rain jacket",
  "Sunscreen and sunglasses",
  "Camera or smartphone",
  "Reusable water bottle"
]`

const preferenceInferenceTemplate = `Infer this traveler's preferences from their booking history and current request.

Booking History (most recent first):
{booking_history}

Current Request:
{user_query}

Return a single JSON object with:
- budget: one of "low", "medium", "high"
- interests: array of interest keywords (museums, food, nature, adventure, etc.)
- dietaryFilters: array of dietary restrictions mentioned or implied
- mobilityNeeds: array of mobility requirements mentioned or implied
- reasoning: one sentence explaining the inference

Return valid JSON only.`

// render substitutes {name} tokens in a fixed template. Unknown tokens are
// left in place so a bad template is visible in the prompt rather than
// silently dropped.
func render(tmpl string, vars map[string]string) string {
	oldnew := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		oldnew = append(oldnew, "{"+k+"}", v)
	}
	return strings.NewReplacer(oldnew...).Replace(tmpl)
}

// joinOr joins a list for prompt inclusion, with a stand-in for empty lists.
func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// formatSearchHits renders up to maxHitsPerPrompt hits into a bounded text
// block: title, URL and truncated content per hit, never more than
// maxHitBlockChars in total.
func formatSearchHits(hits []models.SearchHit) string {
	var b strings.Builder
	for i, hit := range hits {
		if i >= maxHitsPerPrompt {
			break
		}
		title := hit.Title
		if title == "" {
			title = "N/A"
		}
		url := hit.URL
		if url == "" {
			url = "N/A"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		fmt.Fprintf(&b, "   URL: %s\n", url)
		fmt.Fprintf(&b, "   Summary: %s...\n\n", truncate(hit.Content, maxHitContentChars))
	}
	text := b.String()
	if len(text) > maxHitBlockChars {
		text = text[:maxHitBlockChars]
	}
	return text
}

// formatTagSummary reduces activities to a compact list of unique tags,
// capped at maxTagSummary entries, for the packing prompt.
func formatTagSummary(activities []models.Activity) string {
	if len(activities) == 0 {
		return "General sightseeing and leisure"
	}
	seen := make(map[string]bool)
	var tags []string
	for _, act := range activities {
		for _, tag := range act.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
			if len(tags) >= maxTagSummary {
				return strings.Join(tags, ", ")
			}
		}
	}
	if len(tags) == 0 {
		return "General sightseeing and leisure"
	}
	return strings.Join(tags, ", ")
}

// formatBookingHistory renders stored bookings into prompt lines.
func formatBookingHistory(records []models.BookingRecord) string {
	if len(records) == 0 {
		return "No previous bookings on record."
	}
	var b strings.Builder
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %s (%s), %s to %s, %d guests, %s\n",
			i+1, rec.City, rec.PropertyType, rec.StartDate, rec.EndDate, rec.Guests, rec.Status)
	}
	return b.String()
}

// truncate clips s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
