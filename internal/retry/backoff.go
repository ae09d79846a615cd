package retry

import "time"

// ExponentialBackoff returns base * 2^attempt, clamped to max when max > 0.
func ExponentialBackoff(attempt int, base, max time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 30 {
		attempt = 30
	}
	d := base * (1 << attempt)
	if max > 0 && (d > max || d <= 0) {
		return max
	}
	return d
}
