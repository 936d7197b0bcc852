package handlers

import (
	"net/http"
	"time"

	"quizzer/internal/models"
	"quizzer/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const currentUserKey = "current_user"

// AuthRequired resolves the session's user_id to a User row and stashes it on
// the request context. Requests without a valid session get the unauthorized
// page instead of the handler body.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userIDVal := session.Get("user_id")
		if userIDVal == nil {
			c.HTML(http.StatusUnauthorized, "unauthorized.html", nil)
			c.Abort()
			return
		}

		userID, ok := userIDVal.(uint)
		if !ok {
			c.HTML(http.StatusUnauthorized, "unauthorized.html", nil)
			c.Abort()
			return
		}

		user, err := h.users.GetByID(userID)
		if err != nil {
			// Stale session pointing at a missing user
			session.Clear()
			session.Save()
			c.HTML(http.StatusUnauthorized, "unauthorized.html", nil)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		h.logger.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
