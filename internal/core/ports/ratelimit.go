package ports

import "context"

// AttemptLimiter bounds how often a key (typically ip+route) may hit the
// credential endpoints. The identity core only defines the ordering point;
// the counting lives behind this interface.
type AttemptLimiter interface {
	// Allow records an attempt for key and reports whether it is within the
	// limit. An error means the limiter itself is unavailable, not that the
	// attempt is denied.
	Allow(ctx context.Context, key string) (bool, error)
}
