package handler

import (
	"errors"
	"net/http"

	"github.com/rdiego26/muti-user-task-manager-api/internal/auth/credentials"
	"github.com/rdiego26/muti-user-task-manager-api/internal/logger"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []validationError{{Message: "invalid request body"}},
		})
		return
	}

	if errs := requireFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}, "email", "password"); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	_, err := h.registrar.Register(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		case errors.Is(err, credentials.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
		default:
			// Infrastructure failures stay generic; raw detail never
			// reaches the response body.
			logger.Error("register failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		}
		return
	}

	// A fresh account is logged in right away; the response is the same
	// session record login returns.
	sess, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	c.JSON(http.StatusCreated, sess)
}
