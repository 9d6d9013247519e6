package domain

type Image struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

type Country struct {
	Name    string `json:"name"`
	Capital string `json:"capital"`
}

type Inflation struct {
	Country   string `json:"country"`
	Year      string `json:"year"`
	Inflation string `json:"inflation"`
	Indicator string `json:"indicator"`
}

type CostOfLiving struct {
	Place        string         `json:"place"`
	Type         string         `json:"type"`
	CostOfLiving any            `json:"costOfLiving"`
	Summary      map[string]any `json:"summary"`
}
