package handler

import (
	"net/http"

	"github.com/krityagi/auth-service/internal/logger"
	"github.com/krityagi/auth-service/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	// Whatever session the client already presents is invalidated by the
	// service before identity attaches to a fresh one.
	var priorSessionID string
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		priorSessionID = cookie.Value
	}

	sess, err := h.svc.Login(
		c.Request.Context(),
		req.Email,
		req.Password,
		priorSessionID,
	)

	if err != nil {
		fail(c, err, "Error during login")
		return
	}

	// The session write was acknowledged inside Login; only now may the
	// cookie and success response go out.
	session.SetCookie(c.Writer, sess.SessionID, sess.ExpiresAt, h.cookieOpts)

	logger.Info("login successful", map[string]any{
		"email": sess.Email,
		"ip":    c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"redirectUrl": DashboardPath,
	})
}
