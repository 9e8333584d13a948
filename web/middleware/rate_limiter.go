package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket
func NewTokenBucket(maxTokens float64, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow checks if a request can proceed and consumes a token if so
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()

	// Refill tokens based on elapsed time
	tb.tokens = min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// MessageRateLimiter caps chat messages per session. One bucket per session,
// pruned when it goes idle.
type MessageRateLimiter struct {
	buckets        map[uuid.UUID]*TokenBucket
	perMinute      int
	burst          int
	mu             sync.Mutex
	logger         *zap.Logger
	lastSeen       map[uuid.UUID]time.Time
	pruneThreshold time.Duration
}

func NewMessageRateLimiter(perMinute, burst int, logger *zap.Logger) *MessageRateLimiter {
	return &MessageRateLimiter{
		buckets:        make(map[uuid.UUID]*TokenBucket),
		perMinute:      perMinute,
		burst:          burst,
		logger:         logger,
		lastSeen:       make(map[uuid.UUID]time.Time),
		pruneThreshold: time.Hour,
	}
}

func (rl *MessageRateLimiter) bucketFor(sessionID uuid.UUID) *TokenBucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune()

	bucket, ok := rl.buckets[sessionID]
	if !ok {
		bucket = NewTokenBucket(float64(rl.burst), float64(rl.perMinute)/60.0)
		rl.buckets[sessionID] = bucket
	}
	rl.lastSeen[sessionID] = time.Now()
	return bucket
}

// prune drops idle buckets. Caller must hold rl.mu.
func (rl *MessageRateLimiter) prune() {
	cutoff := time.Now().Add(-rl.pruneThreshold)
	for id, seen := range rl.lastSeen {
		if seen.Before(cutoff) {
			delete(rl.lastSeen, id)
			delete(rl.buckets, id)
		}
	}
}

// Middleware rejects messages once a session exhausts its bucket.
func (rl *MessageRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := c.MustGet("sessionID").(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		if !rl.bucketFor(sessionID).Allow() {
			rl.logger.Warn("Rate limited session",
				zap.String("session_id", sessionID.String()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many messages, please slow down",
			})
			return
		}
		c.Next()
	}
}
