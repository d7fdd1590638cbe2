package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/application"
	"github.com/founditapp/foundit-backend/pkg/response"
	"github.com/founditapp/foundit-backend/pkg/validation"
)

type ExperienceHandler struct {
	Svc    *application.ExperienceService
	Logger *logrus.Logger
}

func NewExperienceHandler(svc *application.ExperienceService, logger *logrus.Logger) *ExperienceHandler {
	return &ExperienceHandler{Svc: svc, Logger: logger}
}

type addExperienceRequest struct {
	Name    string `json:"name" binding:"required,max=80"`
	Comment string `json:"comment" binding:"required,max=1000"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

func (h *ExperienceHandler) List(c *gin.Context) {
	exps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("listing experiences failed")
		response.Fail(c, http.StatusInternalServerError, "could not load experiences", nil)
		return
	}
	response.OK(c, http.StatusOK, exps, "experiences", map[string]any{"count": len(exps)})
}

func (h *ExperienceHandler) Add(c *gin.Context) {
	var req addExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	exp, err := h.Svc.Add(c.Request.Context(), application.AddExperienceInput{Name: req.Name, Comment: req.Comment, Rating: req.Rating})
	if err != nil {
		if errors.Is(err, application.ErrInvalidExperience) {
			response.Fail(c, http.StatusBadRequest, "invalid experience", nil)
			return
		}
		h.Logger.WithError(err).Error("adding experience failed")
		response.Fail(c, http.StatusInternalServerError, "could not save experience", nil)
		return
	}
	response.OK(c, http.StatusCreated, exp, "experience shared", nil)
}
