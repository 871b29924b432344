package dto

type CreateGoalRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	TargetPositions int    `json:"target_positions" validate:"min=1"`
	Priority        string `json:"priority" validate:"oneof=low medium high"`
}
