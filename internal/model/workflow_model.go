package model

type WorkflowStatus struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Active       bool   `json:"active"`
	TriggerCount int    `json:"triggerCount"`
	URL          string `json:"url"`
}

// KnownWorkflows are the workflows shipped with the hiring automation stack.
// They are shown when the n8n API is not reachable.
var KnownWorkflows = []WorkflowStatus{
	{
		ID:          "resume-processing",
		Name:        "Resume Processing Pipeline",
		Description: "Processes uploaded resumes and extracts candidate data",
		Active:      true,
	},
	{
		ID:          "candidate-ranking",
		Name:        "Candidate Ranking Pipeline",
		Description: "Ranks and filters candidates based on job requirements",
		Active:      true,
	},
	{
		ID:          "ai-agent-autonomous",
		Name:        "AI Agent - Autonomous Hiring",
		Description: "Autonomous agent that works toward hiring goals",
		Active:      true,
	},
}
