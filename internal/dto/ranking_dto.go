package dto

type RankingFiltersRequest struct {
	Location           string  `json:"location"`
	MinExperienceYears float64 `json:"min_experience_years" validate:"gte=0"`
	WorkAuthorization  string  `json:"work_authorization"`
	Custom             string  `json:"custom"`
	Limit              int     `json:"limit" validate:"gte=0,lte=100"`
}

type RankingRequest struct {
	JDID    string                 `json:"jd_id" validate:"required"`
	Filters *RankingFiltersRequest `json:"filters" validate:"omitempty"`
}
