package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type forgotPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required"`
}

// ForgotPassword answers 200 with the same message whether or not the
// account exists; the response must not confirm registration status.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	if err := h.svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err, "Error sending email")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If that account exists, a password reset link has been sent",
	})
}

type resetPasswordRequest struct {
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	err := h.svc.ResetPassword(
		c.Request.Context(),
		c.Param("token"),
		req.Password,
		req.ConfirmPassword,
	)

	if err != nil {
		fail(c, err, "Error resetting password")
		return
	}

	c.Redirect(http.StatusFound, "/login")
}
