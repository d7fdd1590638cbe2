package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/founditapp/foundit-backend/internal/domain/repository"
	"github.com/founditapp/foundit-backend/pkg/helpers"
)

// OptionalAuth resolves the session like Auth does but never rejects the
// request. Routes that serve both visitors and members use it so limits
// and search generations can key on the user when one is present.
func OptionalAuth(sessions repository.SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			c.Next()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			c.Next()
			return
		}
		sess, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || sess == nil || sess.SID != claims.SessionID {
			c.Next()
			return
		}
		c.Set(CtxUserIDKey, sess.UserID)
		c.Set(CtxSessionKey, sess)
		c.Next()
	}
}
