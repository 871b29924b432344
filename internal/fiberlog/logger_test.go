package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, buf
}

func TestNew_LogsConfiguredTags(t *testing.T) {
	logger, buf := newTestLogger()
	app := fiber.New()
	app.Use(RequestID())
	app.Use(New(Config{Logger: logger, Tags: []string{TagStatus, TagMethod, TagPath, TagRequestID, "unknown"}}))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(200), entry[TagStatus])
	assert.Equal(t, "GET", entry[TagMethod])
	assert.Equal(t, "/ping", entry[TagPath])
	assert.NotEmpty(t, entry[TagRequestID])
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), entry[TagRequestID])
	assert.NotContains(t, entry, "unknown")
}

func TestNew_ErrorStatusIsLoggedAsWarning(t *testing.T) {
	logger, buf := newTestLogger()
	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: []string{TagStatus}}))
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, float64(404), entry[TagStatus])
}

func TestNew_SkipsOptions(t *testing.T) {
	logger, buf := newTestLogger()
	app := fiber.New()
	app.Use(New(Config{Logger: logger}))
	app.Options("/x", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	_, err := app.Test(httptest.NewRequest(fiber.MethodOptions, "/x", nil))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
