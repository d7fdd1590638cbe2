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

// ItemModule wires the listing lifecycle.
// Public: GET /api/items, GET /api/items/search
// Protected: POST /api/items, POST /api/items/:id/retrieve,
// DELETE /api/items/:id, POST /api/items/analyze, POST /api/items/image

type ItemModule struct {
	Handler  *handlers.ItemHandler
	Sessions repository.SessionStore
	JWT      *helpers.JWTManager
}

func NewItemModule(h *handlers.ItemHandler, sessions repository.SessionStore, jwt *helpers.JWTManager) *ItemModule {
	return &ItemModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *ItemModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	keywordLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/items", browseLimiter, m.Handler.List)
	rg.GET("/items/search", keywordLimiter, m.Handler.KeywordSearch)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/items", m.Handler.Report)
		auth.POST("/items/:id/retrieve", m.Handler.MarkRetrieved)
		auth.DELETE("/items/:id", m.Handler.Delete)

		// Analyze calls the AI gateway, so it gets its own tighter limit.
		analyzeLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil)
		auth.POST("/items/analyze", analyzeLimiter, m.Handler.Analyze)
		auth.POST("/items/image", m.Handler.UploadImage)
	}
}
