package restapi

import (
	"net/http"
	"time"

	"roadnav.opentransit.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// ApplyMiddleware wraps the handler with the full middleware chain: security
// headers, request logging, per-key rate limiting and response compression.
func (api *RestAPI) ApplyMiddleware(next http.Handler) http.Handler {
	handler := CompressionMiddleware(next)
	handler = api.rateLimiter(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return securityHeaders(handler)
}
