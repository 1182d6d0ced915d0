package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	err := h.svc.Register(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Password,
		req.ConfirmPassword,
	)

	if err != nil {
		fail(c, err, "Error saving user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}
