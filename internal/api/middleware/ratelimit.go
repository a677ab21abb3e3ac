package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dqexpress/courier-tracking/internal/api/metrics"
)

// Allower abstracts the rate-limit counter (Redis fixed window).
type Allower interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles requests per client IP. A failing counter backend
// fails open: availability of the public tracking endpoint wins over
// enforcement.
func RateLimit(limiter Allower, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, failing open")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
