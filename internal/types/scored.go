package types

// ComponentScores holds the four component scores and their weighted
// combination for one city. All values lie in [0, 1], rounded to 4 decimals.
type ComponentScores struct {
	Temp  float64 `json:"temp"`
	Rain  float64 `json:"rain"`
	Crowd float64 `json:"crowd"`
	Tags  float64 `json:"tags"`
	Final float64 `json:"final"`
}

// MonthConditions carries the catalog values for the requested travel month,
// resolved for presentation alongside a score.
type MonthConditions struct {
	Temp   float64 `json:"temp"`
	Precip float64 `json:"precip"`
	Season string  `json:"season"`
}

// ScoredCandidate is one ranked search result: the city, its component
// scores, and the month conditions the scores were computed from.
type ScoredCandidate struct {
	City   City            `json:"city"`
	Scores ComponentScores `json:"scores"`
	Month  MonthConditions `json:"month_data"`
}
