package middleware

import (
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// sweepEvery is how many new buckets may be created between sweeps of
// buckets that have refilled completely.
const sweepEvery = 1024

// RateLimitRule is a token bucket refilled at Rate tokens per second up to Burst.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

func (r RateLimitRule) enabled() bool {
	return r.Rate > 0 && r.Burst > 0
}

// RateLimitConfig maps route groups to rules. GroupFor names the group of a
// request; an empty group, or one without a rule, is never throttled.
type RateLimitConfig struct {
	Rules    map[string]RateLimitRule
	GroupFor func(*gin.Context) string
	Limiter  *RateLimiter
}

// RateLimiter holds one token bucket per group and client.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	created int
	now     func() time.Time
}

type rateBucket struct {
	tokens float64
	last   time.Time
	// fullAt is when the bucket is back to Burst tokens and can be forgotten.
	fullAt time.Time
}

// NewRateLimiter builds a limiter; now defaults to time.Now.
func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		buckets: make(map[string]*rateBucket),
		now:     now,
	}
}

// RateLimit throttles requests per route group and client IP.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		cfg.Limiter = NewRateLimiter(nil)
	}
	return func(c *gin.Context) {
		if cfg.GroupFor == nil || len(cfg.Rules) == 0 {
			c.Next()
			return
		}
		group := cfg.GroupFor(c)
		rule, ok := cfg.Rules[group]
		if group == "" || !ok {
			c.Next()
			return
		}
		if wait, ok := cfg.Limiter.Allow(rateKey(group, c.ClientIP()), rule); !ok {
			respond.RateLimited(c, wait)
			return
		}
		c.Next()
	}
}

func rateKey(group, clientIP string) string {
	return group + "|" + clientIP
}

// Allow takes one token from the bucket under key. When the bucket is empty
// it reports how long until a token is available.
func (l *RateLimiter) Allow(key string, rule RateLimitRule) (time.Duration, bool) {
	if l == nil || !rule.enabled() {
		return 0, true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		l.sweep(now)
		b = &rateBucket{tokens: float64(rule.Burst), last: now}
		l.buckets[key] = b
	}
	b.refill(now, rule)

	if b.tokens < 1 {
		wait := (1 - b.tokens) / rule.Rate
		return time.Duration(math.Ceil(wait*1000)) * time.Millisecond, false
	}
	b.tokens--
	b.fullAt = now.Add(time.Duration((float64(rule.Burst) - b.tokens) / rule.Rate * float64(time.Second)))
	return 0, true
}

// Len reports how many buckets are tracked.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (b *rateBucket) refill(now time.Time, rule RateLimitRule) {
	elapsed := now.Sub(b.last).Seconds()
	if elapsed <= 0 {
		return
	}
	b.tokens = math.Min(float64(rule.Burst), b.tokens+elapsed*rule.Rate)
	b.last = now
}

// sweep drops full buckets once every sweepEvery creations. Callers hold l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	l.created++
	if l.created < sweepEvery {
		return
	}
	l.created = 0
	for key, b := range l.buckets {
		if !now.Before(b.fullAt) {
			delete(l.buckets, key)
		}
	}
}
