// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/techvault/techvault-backend/internal/config"
)

// ipLimiter hands out one token bucket per client IP. Buckets idle for a few
// minutes are pruned so the map does not grow with every visitor ever seen.
type ipLimiter struct {
	mtx     sync.Mutex
	buckets map[string]*bucket
	rate    rate.Limit
	burst   int
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(r rate.Limit, burst int) *ipLimiter {
	l := &ipLimiter{
		buckets: make(map[string]*bucket),
		rate:    r,
		burst:   burst,
	}
	go l.prune()
	return l
}

func (l *ipLimiter) prune() {
	for {
		time.Sleep(time.Minute)
		l.mtx.Lock()
		for ip, b := range l.buckets {
			if time.Since(b.lastSeen) > 3*time.Minute {
				delete(l.buckets, ip)
			}
		}
		l.mtx.Unlock()
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = time.Now()
	return b.limiter.Allow()
}

func (l *ipLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Limiters carries the per-surface rate limits for one router instance.
// Non-positive configured values fall back to the defaults.
type Limiters struct {
	general *ipLimiter
	auth    *ipLimiter
	upload  *ipLimiter
}

const (
	defaultGeneralPerSecond = 20
	defaultAuthPerMinute    = 10
	defaultUploadPerMinute  = 10
)

func NewLimiters(cfg config.RateLimitConfig) *Limiters {
	general := cfg.GeneralPerSecond
	if general <= 0 {
		general = defaultGeneralPerSecond
	}
	auth := cfg.AuthPerMinute
	if auth <= 0 {
		auth = defaultAuthPerMinute
	}
	upload := cfg.UploadPerMinute
	if upload <= 0 {
		upload = defaultUploadPerMinute
	}

	return &Limiters{
		general: newIPLimiter(rate.Limit(general), general),
		auth:    newIPLimiter(rate.Every(time.Minute/time.Duration(auth)), auth),
		upload:  newIPLimiter(rate.Every(time.Minute/time.Duration(upload)), upload),
	}
}

// General covers every endpoint; Auth and Upload add tighter per-minute
// budgets on credential guessing and image uploads.
func (l *Limiters) General() gin.HandlerFunc { return l.general.middleware() }

func (l *Limiters) Auth() gin.HandlerFunc { return l.auth.middleware() }

func (l *Limiters) Upload() gin.HandlerFunc { return l.upload.middleware() }
