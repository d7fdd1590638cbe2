package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/founditapp/foundit-backend/internal/container"
	handlers "github.com/founditapp/foundit-backend/internal/interface/http"
	"github.com/founditapp/foundit-backend/internal/interface/middleware"
)

// ExperienceModule wires the testimonial wall. Both routes are public;
// posting is limited per IP to keep the wall from being flooded.

type ExperienceModule struct {
	Handler *handlers.ExperienceHandler
}

func NewExperienceModule(h *handlers.ExperienceHandler) *ExperienceModule {
	return &ExperienceModule{Handler: h}
}

func (m *ExperienceModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	addLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/experiences", listLimiter, m.Handler.List)
	rg.POST("/experiences", addLimiter, m.Handler.Add)
}
