package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket that blocks an address for blockTime
// once it runs dry. It guards the auth endpoints. Addresses that have been
// quiet long enough for their bucket to refill are forgotten.
type RateLimiter struct {
	visitors  map[string]*visitor
	mu        sync.Mutex
	requests  int
	burst     int
	per       time.Duration
	blockTime time.Duration
	idleAfter time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

type visitor struct {
	limiter      *rate.Limiter
	lastSeen     time.Time
	blockedUntil time.Time
}

// NewRateLimiter allows requests per period on average with bursts of up to
// burst requests.
func NewRateLimiter(requests, burst int, per, blockTime time.Duration, log *zap.Logger) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	if burst < 1 {
		burst = requests
	}
	// A bucket left alone this long is full again, so dropping it changes
	// nothing for the next request.
	idleAfter := time.Duration(burst) * (per / time.Duration(requests))
	if idleAfter < time.Second {
		idleAfter = time.Second
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		requests:  requests,
		burst:     burst,
		per:       per,
		blockTime: blockTime,
		idleAfter: idleAfter,
		log:       log,
		now:       time.Now,
	}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if retryAfter, ok := l.allow(ip); !ok {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())+1))
			utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyRequests(fmt.Errorf("blocked for %s", retryAfter), ip))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(ip string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.per/time.Duration(l.requests)), l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	if now.Before(v.blockedUntil) {
		return v.blockedUntil.Sub(now), false
	}
	if !v.limiter.AllowN(now, 1) {
		v.blockedUntil = now.Add(l.blockTime)
		return l.blockTime, false
	}
	return 0, true
}

// sweep runs at most once per idleAfter and drops visitors that are neither
// blocked nor seen within idleAfter.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleAfter {
		return
	}
	l.lastSweep = now
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleAfter && !now.Before(v.blockedUntil) {
			delete(l.visitors, ip)
		}
	}
}
