package dto

type DashboardStatsDTO struct {
	AgentStatus string `json:"agent_status"`
	Workflows   int    `json:"workflows"`
	ActiveGoals int64  `json:"active_goals"`
	Executions  int64  `json:"executions"`
}

type SettingsDTO struct {
	N8NURL         string `json:"n8n_url"`
	DatabaseURL    string `json:"database_url"`
	OllamaURL      string `json:"ollama_url"`
	TextExtractURL string `json:"text_extract_url"`
}

type WorkflowListDTO struct {
	EditorURL string `json:"editor_url"`
	Live      bool   `json:"live"`
	Workflows any    `json:"workflows"`
}
