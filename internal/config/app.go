package config

import (
	"os"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"
)

type AppConfig struct {
	Name          string
	Env           string
	Port          string
	BaseURL       string
	UploadMaxSize int64
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Warnf("APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:          getEnv("APP_NAME", "Hiring Automation Dashboard"),
			Env:           env,
			Port:          getEnv("APP_PORT", ":3000"),
			BaseURL:       os.Getenv("APP_URL"),
			UploadMaxSize: int64(getEnvInt("UPLOAD_MAX_SIZE_MB", 5)) * 1024 * 1024,
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
