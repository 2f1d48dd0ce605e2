package socket

import (
	"math/rand"
	"time"
)

const (
	baseRetryDelay = 2 * time.Second
	maxRetryDelay  = 30 * time.Second
	jitterFraction = 0.2
)

// retryDelay returns the capped exponential delay for the given number of
// consecutive failures: base, 2x base, 4x base, up to maxRetryDelay.
func retryDelay(failures int, base time.Duration) time.Duration {
	if failures < 0 {
		failures = 0
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return delay
}

// withJitter spreads a delay by up to ±20% so reconnecting clients don't
// stampede the daemon in lockstep.
func withJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	span := float64(d) * jitterFraction
	offset := (rand.Float64()*2 - 1) * span
	return d + time.Duration(offset)
}
