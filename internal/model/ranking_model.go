package model

type RankingFilters struct {
	Location           string  `json:"location,omitempty"`
	MinExperienceYears float64 `json:"min_experience_years,omitempty"`
	WorkAuthorization  string  `json:"work_authorization,omitempty"`
	Custom             string  `json:"custom,omitempty"`
	Limit              int     `json:"limit,omitempty"`
}

// RankingRequest is the body of the rank-candidates webhook.
type RankingRequest struct {
	JDID    string          `json:"jd_id"`
	Filters *RankingFilters `json:"filters,omitempty"`
}

type ScoringFactor struct {
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// ScoringFactors are computed by the n8n ranking workflow; they are listed
// here for display only.
var ScoringFactors = []ScoringFactor{
	{Label: "Semantic Similarity", Weight: 40},
	{Label: "Skill Overlap", Weight: 30},
	{Label: "Experience Match", Weight: 20},
	{Label: "Recency Bonus", Weight: 10},
}

var FilteringOptions = []string{
	"Location matching",
	"Experience requirements",
	"Work authorization",
	"Custom criteria",
}
