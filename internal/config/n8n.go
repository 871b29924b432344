package config

import (
	"os"
	"strings"
	"sync"
	"time"
)

// N8NConfig points at the workflow-automation server. Only BaseURL is
// required; APIKey enables the live workflow listing.
type N8NConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

var (
	n8nConfig *N8NConfig
	n8nOnce   sync.Once
)

func LoadN8NConfig() *N8NConfig {
	n8nOnce.Do(func() {
		n8nConfig = &N8NConfig{
			BaseURL: strings.TrimRight(getEnv("N8N_URL", "http://localhost:5678"), "/"),
			APIKey:  os.Getenv("N8N_API_KEY"),
			Timeout: time.Duration(getEnvInt("N8N_TIMEOUT_SECONDS", 30)) * time.Second,
		}
	})
	return n8nConfig
}
