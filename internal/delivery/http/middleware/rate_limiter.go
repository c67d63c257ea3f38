package middleware

import (
	"time"

	"matchmaker/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

// RateLimiter limits requests per authenticated user, falling back to the
// client IP. A nil storage keeps counters in process memory.
func RateLimiter(max int, expiration time.Duration, storage fiber.Storage) fiber.Handler {
	if max <= 0 {
		max = 60
	}
	if expiration <= 0 {
		expiration = time.Minute
	}

	cfg := limiter.Config{
		Max:        max,
		Expiration: expiration,
		KeyGenerator: func(c fiber.Ctx) string {
			if id, ok := UserID(c); ok {
				return "user:" + id.String()
			}
			return "ip:" + c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return NewAppError(fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil, nil)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return limiter.New(cfg)
}
