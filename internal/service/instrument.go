package service

import (
	"net/url"
	"time"

	"github.com/fadilmartias/hiring-dashboard/internal/metrics"
	"github.com/go-resty/resty/v2"
)

// instrument records every request made through client under service.
func instrument(client *resty.Client, service string) *resty.Client {
	return client.
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.ObserveOutbound(service, endpointOf(resp.Request), resp.StatusCode(), resp.Time())
			return nil
		}).
		OnError(func(req *resty.Request, _ error) {
			metrics.ObserveOutbound(service, endpointOf(req), 0, time.Since(req.Time))
		})
}

func endpointOf(req *resty.Request) string {
	if req == nil {
		return ""
	}
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.Path
	}
	if u, err := url.Parse(req.URL); err == nil {
		return u.Path
	}
	return req.URL
}
