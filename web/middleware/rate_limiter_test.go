package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}
	if tb.Allow() {
		t.Error("request allowed with empty bucket")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(1, 100) // 100 tokens/second

	if !tb.Allow() {
		t.Fatal("first request denied")
	}
	if tb.Allow() {
		t.Fatal("second immediate request allowed")
	}

	time.Sleep(50 * time.Millisecond)
	if !tb.Allow() {
		t.Error("request denied after refill window")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewMessageRateLimiter(1, 2, zap.NewNop())
	sessionID := uuid.New()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("sessionID", sessionID)
		c.Next()
	})
	router.POST("/chat", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", code)
	}
	if code := send(); code != http.StatusOK {
		t.Fatalf("second request = %d, want 200 (burst)", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", code)
	}
}

func TestRateLimiterIsolatesSessions(t *testing.T) {
	rl := NewMessageRateLimiter(1, 1, zap.NewNop())

	a := uuid.New()
	b := uuid.New()

	if !rl.bucketFor(a).Allow() {
		t.Fatal("session a first request denied")
	}
	if rl.bucketFor(a).Allow() {
		t.Fatal("session a second request allowed")
	}
	if !rl.bucketFor(b).Allow() {
		t.Error("session b throttled by session a's bucket")
	}
}
