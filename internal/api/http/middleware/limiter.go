package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis builds a per-client-address sliding-window limiter
// allowing perMinute requests per minute, counted in Redis. keyPrefix keeps
// limiters for different route groups from sharing counters.
func NewLimiterWithRedis(rdb *redis.Client, keyPrefix string, perMinute int) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage: storage,

		// sliding window
		Max:               perMinute,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},

		KeyGenerator: func(c fiber.Ctx) string {
			return keyPrefix + c.IP()
		},
	})
}
