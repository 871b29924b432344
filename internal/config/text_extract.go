package config

import (
	"strings"
	"sync"
	"time"
)

type TextExtractConfig struct {
	BaseURL string
	Timeout time.Duration
}

var (
	textExtractConfig *TextExtractConfig
	textExtractOnce   sync.Once
)

func LoadTextExtractConfig() *TextExtractConfig {
	textExtractOnce.Do(func() {
		textExtractConfig = &TextExtractConfig{
			BaseURL: strings.TrimRight(getEnv("TEXT_EXTRACT_URL", "http://localhost:8001"), "/"),
			Timeout: time.Duration(getEnvInt("TEXT_EXTRACT_TIMEOUT_SECONDS", 60)) * time.Second,
		}
	})
	return textExtractConfig
}
