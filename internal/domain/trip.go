package domain

type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

func (b BudgetTier) Valid() bool {
	return b == BudgetLow || b == BudgetMedium || b == BudgetHigh
}

type TripPreferences struct {
	TravelStyle string `json:"travelStyle"`
	GroupSize   int    `json:"groupSize"`
	Duration    string `json:"duration"`
}

// TripPlan is derived, never persisted.
type TripPlan struct {
	Destination     string     `json:"destination"`
	Budget          BudgetTier `json:"budget"`
	Duration        string     `json:"duration"`
	Accommodation   string     `json:"accommodation"`
	Activities      []string   `json:"activities"`
	EstimatedCost   string     `json:"estimatedCost"`
	Recommendations []string   `json:"recommendations"`
}

type Suggestions struct {
	Cities     []string `json:"cities"`
	Highlights []string `json:"highlights"`
	BestTime   string   `json:"bestTime"`
	Currency   string   `json:"currency"`
}
