package config

import (
	"github.com/fadilmartias/hiring-dashboard/internal/fiberlog"
	log "github.com/sirupsen/logrus"
)

// InitLogger sets up the global logrus logger and returns the request
// logging config for fiberlog.
func InitLogger(app *AppConfig) *fiberlog.Config {
	level := log.DebugLevel
	if app.IsProduction() {
		level = log.InfoLevel
	}
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	log.SetLevel(level)

	return &fiberlog.Config{
		Logger: log.StandardLogger(),
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagIP,
			fiberlog.TagClientID,
			fiberlog.TagRequestID,
		},
	}
}
