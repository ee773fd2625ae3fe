package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeCounterCache implements the counter primitives the rate limiter
// uses; everything else is unused here.
type fakeCounterCache struct {
	counts map[string]int64
	ttls   map[string]time.Duration
	down   bool
}

func newFakeCounterCache() *fakeCounterCache {
	return &fakeCounterCache{
		counts: make(map[string]int64),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeCounterCache) Increment(_ context.Context, key string) (int64, error) {
	if f.down {
		return 0, errors.New("cache unavailable")
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounterCache) Expire(_ context.Context, key string, ttl time.Duration) error {
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCounterCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}
func (f *fakeCounterCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (f *fakeCounterCache) Delete(_ context.Context, _ ...string) error        { return nil }
func (f *fakeCounterCache) DeletePattern(_ context.Context, _ string) error    { return nil }
func (f *fakeCounterCache) Ping(_ context.Context) error                       { return nil }
func (f *fakeCounterCache) Exists(_ context.Context, _ string) (bool, error)   { return false, nil }
func (f *fakeCounterCache) TTL(_ context.Context, _ string) (time.Duration, error) {
	return 0, nil
}

func newRateLimitedRouter(c *fakeCounterCache, limit int) *gin.Engine {
	r := gin.New()
	r.POST("/submit", RateLimit(c, "test", limit, time.Hour), func(ctx *gin.Context) {
		ctx.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimitAllowsUpToLimit(t *testing.T) {
	c := newFakeCounterCache()
	r := newRateLimitedRouter(c, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitStartsWindowOnFirstHit(t *testing.T) {
	c := newFakeCounterCache()
	r := newRateLimitedRouter(c, 3)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Len(t, c.ttls, 1)
	for _, ttl := range c.ttls {
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestRateLimitFailsOpenWhenCacheIsDown(t *testing.T) {
	c := newFakeCounterCache()
	c.down = true
	r := newRateLimitedRouter(c, 1)

	// The counter is unavailable; requests keep flowing.
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}
