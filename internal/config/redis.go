package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// RedisConfig backs the busy gate when several dashboard instances run side by
// side. An empty Addr keeps the gate in process memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
		if err != nil || db < 0 {
			log.Warnf("invalid REDIS_DB=%q, using 0", os.Getenv("REDIS_DB"))
			db = 0
		}
		redisConfig = &RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
			LockTTL:  time.Duration(getEnvInt("BUSY_LOCK_TTL_SECONDS", 120)) * time.Second,
		}
	})
	return redisConfig
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}
