package httputil

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// APITransport is an http.RoundTripper that applies the outbound
// pipeline for upstream API calls: default headers, then the rate
// limiter, then the underlying transport.
type APITransport struct {
	Base        http.RoundTripper
	Headers     http.Header
	RateLimiter *rate.Limiter
}

func (t *APITransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, vals := range t.Headers {
		if req.Header.Get(key) == "" {
			for _, v := range vals {
				req.Header.Add(key, v)
			}
		}
	}

	if t.RateLimiter != nil {
		if err := t.RateLimiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
