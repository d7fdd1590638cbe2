package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
	"github.com/founditapp/foundit-backend/pkg/helpers"
	"github.com/founditapp/foundit-backend/pkg/response"
)

const (
	CtxUserIDKey  = "userID"
	CtxSessionKey = "session"
)

// Auth validates the access token cookie and ensures an active session
// exists for the user. The token's sid must match the stored session;
// a login or refresh on another device invalidates older tokens.
// Sets userID and the session entity in the Gin context on success.
func Auth(sessions repository.SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Fail(c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || sess == nil {
			response.Fail(c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}
		if sess.SID != claims.SessionID {
			response.Fail(c, http.StatusUnauthorized, "session superseded", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, sess.UserID)
		c.Set(CtxSessionKey, sess)
		c.Next()
	}
}

// SessionFromCtx returns the session placed by Auth, or nil on
// unauthenticated routes.
func SessionFromCtx(c *gin.Context) *entity.Session {
	v, ok := c.Get(CtxSessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*entity.Session)
	return sess
}
