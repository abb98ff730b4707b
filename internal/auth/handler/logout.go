package handler

import (
	"errors"
	"net/http"

	"github.com/rdiego26/muti-user-task-manager-api/internal/logger"
	"github.com/rdiego26/muti-user-task-manager-api/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Logout(c *gin.Context) {

	token := c.GetHeader(session.TokenHeader)

	err := h.sessions.Logout(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		logger.Error("logout failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
