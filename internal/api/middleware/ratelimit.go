package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetcrumb/menu-system/internal/api/metrics"
)

// Allower decides whether a caller may proceed. Backed by Redis in
// production; stubbed in tests.
type Allower interface {
	Allow(ctx context.Context, ip string) (bool, error)
}

// RateLimit rejects callers that exceed the limiter's window with 429.
// Limiter errors fail open: a Redis outage must not take the menu down.
func RateLimit(limiter Allower, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
