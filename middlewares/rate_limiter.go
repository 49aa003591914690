package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter is a sliding-window limiter keyed by client IP.
type RateLimiter struct {
	rate     int
	interval time.Duration
	ips      map[string][]time.Time
	swept    time.Time
	mu       sync.Mutex
}

func NewRateLimiter(rate int, interval int) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: time.Duration(interval) * time.Second,
		ips:      make(map[string][]time.Time),
	}
}

// WriteRateLimiter -> lebih ketat untuk endpoint yang mengubah floor plan,
// satu token bucket bersama untuk semua client
func WriteRateLimiter(perSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "Too many changes, please wait a moment",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.interval)
	if now.Sub(rl.swept) >= rl.interval {
		rl.sweep(cutoff)
		rl.swept = now
	}

	valid := rl.ips[ip][:0]
	for _, t := range rl.ips[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}
	rl.ips[ip] = append(valid, now)
	return true
}

// sweep drops clients with no request inside the current window.
func (rl *RateLimiter) sweep(cutoff time.Time) {
	for ip, times := range rl.ips {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(rl.ips, ip)
		}
	}
}
