// Package httpclient provides the shared HTTP client used by boundary
// adapters, with request/response logging middleware.
package httpclient

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	Logger  *slog.Logger
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	lrt.Logger.Debug("http request started",
		"method", req.Method,
		"url", req.URL.String(),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		lrt.Logger.Error("http request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"duration", duration,
			"error", err,
		)
		return nil, err
	}

	lrt.Logger.Debug("http request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status_code", resp.StatusCode,
		"duration", duration,
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration, logger *slog.Logger) *http.Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
			Logger:  logger,
		},
		Timeout: timeout,
	}
}
