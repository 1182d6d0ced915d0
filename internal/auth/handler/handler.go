package handler

import (
	"errors"
	"net/http"

	"github.com/krityagi/auth-service/internal/auth"
	"github.com/krityagi/auth-service/internal/logger"
	"github.com/krityagi/auth-service/internal/session"

	"github.com/gin-gonic/gin"
)

// DashboardPath is the redirect target handed to clients after login.
// The core never calls the dashboard service itself.
const DashboardPath = "/dashboard"

type Handler struct {
	svc        *auth.Service
	cookieOpts session.CookieOptions
}

func NewHandler(svc *auth.Service, cookieOpts session.CookieOptions) *Handler {
	return &Handler{
		svc:        svc,
		cookieOpts: cookieOpts,
	}
}

// RegisterRoutes mounts the auth endpoints. loginLimiter guards only the
// login route; it runs before any credential work.
func (h *Handler) RegisterRoutes(r *gin.Engine, loginLimiter gin.HandlerFunc) {
	r.POST("/register", h.Register)
	r.POST("/login", loginLimiter, h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/forgot-password", h.ForgotPassword)
	r.POST("/reset-password/:token", h.ResetPassword)
}

func (h *Handler) Logout(c *gin.Context) {

	var sessionID string
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		sessionID = cookie.Value
	}

	if err := h.svc.Logout(c.Request.Context(), sessionID); err != nil {
		logger.Error("logout failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed"})
		return
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Logout successful",
		"redirectUrl": "/login",
	})
}

// fail translates service errors into the HTTP contract: validation and
// authentication failures are 400 with their own message, everything
// else is an opaque 500.
func fail(c *gin.Context, err error, serverMessage string) {
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrDuplicateEmail),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrTokenInvalidOrExpired):
		c.JSON(http.StatusBadRequest, gin.H{"message": clientMessage(err)})
	default:
		logger.Error(serverMessage, map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": serverMessage})
	}
}

func clientMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, auth.ErrDuplicateEmail):
		return "Email already in use"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, auth.ErrTokenInvalidOrExpired):
		return "Token is invalid or expired"
	}
	return "Bad request"
}
