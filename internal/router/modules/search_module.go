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

// SearchModule wires AI-assisted matching. The route is open to visitors;
// a session, when present, scopes the caller's search generation to the
// user instead of the IP.

type SearchModule struct {
	Handler  *handlers.SearchHandler
	Sessions repository.SessionStore
	JWT      *helpers.JWTManager
}

func NewSearchModule(h *handlers.SearchHandler, sessions repository.SessionStore, jwt *helpers.JWTManager) *SearchModule {
	return &SearchModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *SearchModule) Register(rg *gin.RouterGroup) {
	// Every search hits the AI gateway, keep the limit tight.
	limiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil)

	rg.POST("/search", middleware.OptionalAuth(m.Sessions, m.JWT), limiter, m.Handler.Search)
}
