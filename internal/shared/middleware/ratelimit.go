package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/cache"
)

// RateLimit caps public mutating endpoints (guestbook posts, contact
// messages) per client IP using a Redis counter with a sliding window.
// scope separates counters per endpoint group.
//
// The cache being down must not take the public site down with it, so
// counter errors fail open.
func RateLimit(c cache.Cache, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, ctx.ClientIP())

		count, err := c.Increment(ctx.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("rate limit counter unavailable")
			ctx.Next()
			return
		}

		// First hit in the window starts the clock
		if count == 1 {
			if err := c.Expire(ctx.Request.Context(), key, window); err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("failed to set rate limit window")
			}
		}

		if count > int64(limit) {
			response.TooManyRequests(ctx, "Too many requests, slow down")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
