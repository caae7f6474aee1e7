package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/infrastructure/ratelimit"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/utils"
)

// SendRateLimiter throttles message sends per authenticated party. A limiter
// error lets the request through.
type SendRateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewSendRateLimiter(limiter ratelimit.RateLimiter, perMinute int, logger logger.Interface) *SendRateLimiter {
	return &SendRateLimiter{
		limiter: limiter,
		config:  ratelimit.RateLimitConfig{RequestsPerMinute: perMinute},
		logger:  logger,
	}
}

func (rl *SendRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil || rl.config.RequestsPerMinute <= 0 {
			c.Next()
			return
		}

		viewer, ok := utils.GetViewer(c)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%d", viewer.Type, viewer.ID)
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.config)
		if err != nil {
			rl.logger.Warnw("send rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many messages, please slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
