package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// ipLimiters un token bucket por IP. Los buckets inactivos se descartan en cada barrido.
type ipLimiters struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	buckets  map[string]*ipBucket
	lastScan time.Time
}

type ipBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

const limiterIdleTTL = 10 * time.Minute

func (l *ipLimiters) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastScan) > limiterIdleTTL {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > limiterIdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastScan = now
	}
	b, ok := l.buckets[ip]
	if !ok {
		b = &ipBucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// LoginRateLimit limita los intentos por IP a perMinute por minuto (con ráfaga igual a perMinute).
// perMinute <= 0 deshabilita el límite.
func LoginRateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	l := &ipLimiters{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		buckets: make(map[string]*ipBucket),
	}
	return func(c *fiber.Ctx) error {
		if !l.allow(c.IP(), time.Now()) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "TOO_MANY_REQUESTS", Message: msgTooManyAttempts})
		}
		return c.Next()
	}
}
