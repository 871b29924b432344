package model

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// GoalDraft is the body of the create-goal webhook.
type GoalDraft struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	TargetPositions int      `json:"target_positions"`
	Priority        Priority `json:"priority"`
}
