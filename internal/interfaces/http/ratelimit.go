package http

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// RateRule n peticiones por ventana.
type RateRule struct {
	Requests int
	Window   time.Duration
}

// RateLimitConfig reglas por tipo de ruta.
type RateLimitConfig struct {
	Auth       RateRule // /api/auth/*
	PublicMenu RateRule // GET /api/menu/public
	Write      RateRule // POST/PUT/PATCH/DELETE bajo /api
	API        RateRule // resto de /api
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limitador token-bucket por IP y tipo de ruta.
type RateLimiter struct {
	cfg      RateLimitConfig
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	now      func() time.Time
	log      *logger.Logger
	metrics  *Metrics
}

// NewRateLimiter crea el limitador. metrics puede ser nil.
func NewRateLimiter(cfg RateLimitConfig, log *logger.Logger, metrics *Metrics) *RateLimiter {
	return &RateLimiter{
		cfg:      cfg,
		limiters: make(map[string]*limiterEntry),
		now:      time.Now,
		log:      log.Named("ratelimit"),
		metrics:  metrics,
	}
}

// bucket decide qué regla aplica; "" = sin límite (fuera de /api).
func (rl *RateLimiter) bucket(method, path string) (string, RateRule) {
	switch {
	case strings.HasPrefix(path, "/api/auth"):
		return "auth", rl.cfg.Auth
	case method == fiber.MethodGet && strings.HasPrefix(path, "/api/menu/public"):
		return "menu", rl.cfg.PublicMenu
	case strings.HasPrefix(path, "/api"):
		if isWrite(method) {
			return "write", rl.cfg.Write
		}
		return "api", rl.cfg.API
	}
	return "", RateRule{}
}

func (rl *RateLimiter) getLimiter(key string, rule RateRule, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, ok := rl.limiters[key]
	if !ok {
		every := rule.Window / time.Duration(rule.Requests)
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Every(every), rule.Requests)}
		rl.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Handler middleware Fiber. Al exceder responde 429 con Retry-After.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, rule := rl.bucket(c.Method(), c.Path())
		if name == "" || rule.Requests <= 0 || rule.Window <= 0 {
			return c.Next()
		}
		ip := clientIP(c)
		now := rl.now()
		lim := rl.getLimiter(name+":"+ip, rule, now)

		res := lim.ReserveN(now, 1)
		if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
			res.CancelAt(now)
			retry := int(math.Ceil(delay.Seconds()))
			if retry < 1 {
				retry = 1
			}
			rl.metrics.limited(name)
			rl.log.Warn().Str("ip", ip).Str("path", c.Path()).Str("bucket", name).Msg("rate limit excedido")
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retry))
			c.Set("X-RateLimit-Remaining", "0")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "Muitas requisições. Tente novamente em alguns minutos.",
				Code:  "RATE_LIMITED",
			})
		}
		c.Set("X-RateLimit-Remaining", strconv.Itoa(int(lim.TokensAt(now))))
		return c.Next()
	}
}

// Cleanup elimina limitadores sin uso desde hace más de idle.
func (rl *RateLimiter) Cleanup(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-idle)
	removed := 0
	for k, e := range rl.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(rl.limiters, k)
			removed++
		}
	}
	return removed
}

// StartCleanup limpia periódicamente hasta que done se cierre.
func (rl *RateLimiter) StartCleanup(interval, idle time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Cleanup(idle)
			case <-done:
				return
			}
		}
	}()
}
