package middleware

import (
	"smart-pto/pkg/log"
)

// Config configures the shared HTTP middlewares.
type Config struct {
	RateLimitPerMin int // Per client IP, applied to the expensive mailbox routes
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
