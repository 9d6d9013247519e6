package app

import (
	"strings"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// Planner derives canned trip-plan content from fixed tables. Pure: no I/O,
// deterministic given inputs.
type Planner struct{}

func NewPlanner() *Planner { return &Planner{} }

var durationByTier = map[domain.BudgetTier]string{
	domain.BudgetLow:    "3-5 days",
	domain.BudgetMedium: "5-7 days",
	domain.BudgetHigh:   "7-10 days",
}

var accommodationByTier = map[domain.BudgetTier]string{
	domain.BudgetLow:    "Budget hotels and hostels",
	domain.BudgetMedium: "Mid-range hotels and boutique stays",
	domain.BudgetHigh:   "Luxury hotels and resorts",
}

var costByTier = map[domain.BudgetTier]string{
	domain.BudgetLow:    "$500-1000",
	domain.BudgetMedium: "$1000-2500",
	domain.BudgetHigh:   "$2500-5000+",
}

var activitiesByStyle = map[string][]string{
	"adventure": {"Hiking", "Rock climbing", "Water sports", "Zip lining"},
	"relaxing":  {"Spa treatments", "Beach lounging", "Yoga sessions", "Meditation retreats"},
	"cultural":  {"Museum visits", "Historical tours", "Local workshops", "Traditional performances"},
	"wildlife":  {"Safari tours", "Bird watching", "Nature walks", "Wildlife photography"},
	"luxury":    {"Private tours", "Fine dining", "Helicopter rides", "Exclusive experiences"},
}

var defaultActivities = []string{"Sightseeing", "Local cuisine", "Shopping", "Photography"}

var recommendations = []string{
	"Book accommodations in advance",
	"Research local customs and etiquette",
	"Pack according to the weather",
	"Get travel insurance",
	"Learn basic local phrases",
}

func (p *Planner) Plan(destination string, budget domain.BudgetTier, prefs domain.TripPreferences) (domain.TripPlan, error) {
	if strings.TrimSpace(destination) == "" {
		return domain.TripPlan{}, domain.ErrMissingDestination
	}
	if !budget.Valid() {
		return domain.TripPlan{}, domain.ErrInvalidBudget
	}

	activities, ok := activitiesByStyle[prefs.TravelStyle]
	if !ok {
		activities = defaultActivities
	}

	return domain.TripPlan{
		Destination:     destination,
		Budget:          budget,
		Duration:        durationByTier[budget],
		Accommodation:   accommodationByTier[budget],
		Activities:      append([]string(nil), activities...),
		EstimatedCost:   costByTier[budget],
		Recommendations: append([]string(nil), recommendations...),
	}, nil
}

var suggestionsByDestination = map[string]domain.Suggestions{
	"India": {
		Cities:     []string{"Mumbai", "Delhi", "Jaipur", "Agra", "Varanasi"},
		Highlights: []string{"Taj Mahal", "Red Fort", "Gateway of India", "Golden Temple"},
		BestTime:   "October to March",
		Currency:   "Indian Rupee (INR)",
	},
	"France": {
		Cities:     []string{"Paris", "Lyon", "Nice", "Bordeaux", "Marseille"},
		Highlights: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame", "Champs-Élysées"},
		BestTime:   "April to October",
		Currency:   "Euro (EUR)",
	},
	"Japan": {
		Cities:     []string{"Tokyo", "Kyoto", "Osaka", "Sapporo", "Fukuoka"},
		Highlights: []string{"Mount Fuji", "Senso-ji Temple", "Fushimi Inari", "Tokyo Tower"},
		BestTime:   "March to May and September to November",
		Currency:   "Japanese Yen (JPY)",
	},
}

var genericSuggestions = domain.Suggestions{
	Cities:     []string{"Explore local attractions"},
	Highlights: []string{"Discover local culture"},
	BestTime:   "Check local weather",
	Currency:   "Check local currency",
}

// Suggestions never fails; unknown destinations get the generic bundle.
func (p *Planner) Suggestions(destination string) domain.Suggestions {
	if s, ok := suggestionsByDestination[destination]; ok {
		return s
	}
	return genericSuggestions
}
