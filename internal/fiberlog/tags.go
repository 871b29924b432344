package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPID       = "pid"
	TagStatus    = "status"
	TagLatency   = "latency"
	TagMethod    = "method"
	TagPath      = "path"
	TagIP        = "ip"
	TagClientID  = "client_id"
	TagRequestID = "request_id"
	TagBytesSent = "bytes_sent"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag returns the value logged under a tag
type FuncTag func(c *fiber.Ctx, d *data) any

var funcTags = map[string]FuncTag{
	TagPID: func(_ *fiber.Ctx, d *data) any {
		return d.pid
	},
	TagStatus: func(c *fiber.Ctx, _ *data) any {
		return c.Response().StatusCode()
	},
	TagLatency: func(_ *fiber.Ctx, d *data) any {
		return d.end.Sub(d.start).String()
	},
	TagMethod: func(c *fiber.Ctx, _ *data) any {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, _ *data) any {
		return c.Path()
	},
	TagIP: func(c *fiber.Ctx, _ *data) any {
		return c.IP()
	},
	TagClientID: func(c *fiber.Ctx, _ *data) any {
		return c.Get("X-Client-ID")
	},
	TagRequestID: func(c *fiber.Ctx, _ *data) any {
		return c.GetRespHeader(fiber.HeaderXRequestID)
	},
	TagBytesSent: func(c *fiber.Ctx, _ *data) any {
		return len(c.Response().Body())
	},
}

// getFuncTagMap keeps only the tags listed in cfg; unknown tags are ignored
func getFuncTagMap(cfg Config) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTags[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
