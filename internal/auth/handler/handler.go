package handler

import (
	"context"
	"log"

	"github.com/rdiego26/muti-user-task-manager-api/internal/session"

	"github.com/gin-gonic/gin"
)

// Registrar creates a user account with password credentials and
// returns the new user's id.
type Registrar interface {
	Register(ctx context.Context, name, email, password string) (userID string, err error)
}

type Handler struct {
	sessions  *session.Service
	registrar Registrar
}

func NewHandler(sessions *session.Service, registrar Registrar) *Handler {
	return &Handler{
		sessions:  sessions,
		registrar: registrar,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/login", h.Login)
	api.GET("/logout", h.Logout)
	api.POST("/register", h.Register)

	for _, route := range r.Routes() {
		log.Printf("[ROUTE] %s %s", route.Method, route.Path)
	}
}
