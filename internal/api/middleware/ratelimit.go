package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-system/internal/api/metrics"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

// RateLimit bounds attempt frequency on the credential endpoints, keyed by
// caller IP and route. It runs before the request gate and before any
// credential work. A limiter outage fails open: an unreachable counter must
// not lock everyone out.
func RateLimit(limiter ports.AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP() + ":" + c.Path()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("attempt limiter unavailable, failing open")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitRejectionsTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
