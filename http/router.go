package http

import "net/http"

// NewRouter registers the API routes, each behind the rate limiter.
func NewRouter(handler *ComparisonHandler, limiter *RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle(
		"/loan/compare",
		RateLimitMiddleware(limiter, http.HandlerFunc(handler.Compare)),
	)

	mux.Handle(
		"/loan/report",
		RateLimitMiddleware(limiter, http.HandlerFunc(handler.Report)),
	)

	mux.HandleFunc("/healthz", Health)

	return mux
}
