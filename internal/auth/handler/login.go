package handler

import (
	"errors"
	"net/http"

	"github.com/rdiego26/muti-user-task-manager-api/internal/logger"
	"github.com/rdiego26/muti-user-task-manager-api/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []validationError{{Message: "invalid request body"}},
		})
		return
	}

	// Schema check first: the session service is never invoked for a
	// request missing required properties.
	if errs := requireFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}, "email", "password"); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		logger.Error("login failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}

	c.JSON(http.StatusOK, sess)
}
