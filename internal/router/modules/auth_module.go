package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/founditapp/foundit-backend/internal/container"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
	handlers "github.com/founditapp/foundit-backend/internal/interface/http"
	"github.com/founditapp/foundit-backend/internal/interface/middleware"
	"github.com/founditapp/foundit-backend/pkg/helpers"
)

// AuthModule wires account HTTP handlers and auth middleware into routes.
// Public: POST /api/auth/signup, POST /api/auth/login, POST /api/auth/refresh
// Protected: POST /api/auth/logout, GET /api/auth/me

type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions repository.SessionStore
	JWT      *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, sessions repository.SessionStore, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Tight limits on credential endpoints, looser on refresh
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/auth/me", m.Handler.Me)
	}
}
