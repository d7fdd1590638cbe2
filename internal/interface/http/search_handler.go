package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/application"
	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/interface/middleware"
	"github.com/founditapp/foundit-backend/pkg/response"
	"github.com/founditapp/foundit-backend/pkg/validation"
)

type SearchHandler struct {
	Svc    *application.SearchService
	Logger *logrus.Logger
}

func NewSearchHandler(svc *application.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{Svc: svc, Logger: logger}
}

type searchRequest struct {
	ActiveTab string `json:"activeTab" binding:"required,oneof=lost found"`
	Query     string `json:"query"`
}

// principal scopes search generations. Authenticated callers are keyed by
// user id, anonymous ones by client IP.
func principal(c *gin.Context) string {
	if uid := c.GetString(middleware.CtxUserIDKey); uid != "" {
		return "user:" + uid
	}
	if ip := c.GetString("real_ip"); ip != "" {
		return "ip:" + ip
	}
	return "ip:" + c.ClientIP()
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Search(c.Request.Context(), principal(c), entity.ItemType(req.ActiveTab), req.Query)
	if err != nil {
		if errors.Is(err, application.ErrStaleSearch) {
			// A newer search already owns the result slot.
			response.Fail(c, http.StatusConflict, "search superseded", nil)
			return
		}
		h.Logger.WithError(err).Warn("search failed")
		response.Fail(c, http.StatusBadGateway, "search failed", nil)
		return
	}
	response.OK(c, http.StatusOK, res, "search results", nil)
}
