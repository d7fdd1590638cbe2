package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/application"
	"github.com/founditapp/foundit-backend/internal/interface/middleware"
	"github.com/founditapp/foundit-backend/pkg/helpers"
	"github.com/founditapp/foundit-backend/pkg/response"
	"github.com/founditapp/foundit-backend/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,pwd"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sess, pair, err := h.Svc.Signup(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Fail(c, http.StatusConflict, "username already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Fail(c, http.StatusInternalServerError, "signup failed", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusCreated, gin.H{"userId": sess.UserID, "username": sess.Username}, "account created", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sess, pair, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, gin.H{"userId": sess.UserID, "username": sess.Username}, "login successful", map[string]any{"access_expires_at": pair.AccessTokenExpiry, "refresh_expires_at": pair.RefreshTokenExpiry})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Fail(c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	_, pair, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", map[string]any{"access_expires_at": pair.AccessTokenExpiry, "refresh_expires_at": pair.RefreshTokenExpiry})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.SessionFromCtx(c)
	if err := h.Svc.Logout(c.Request.Context(), sess); err != nil {
		response.Fail(c, http.StatusUnauthorized, "no active session", nil)
		return
	}
	h.Cookies.Clear(c)
	response.OK[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}, "profile", nil)
}
