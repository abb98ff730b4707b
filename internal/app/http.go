package app

import (
	"context"

	"github.com/rdiego26/muti-user-task-manager-api/internal/auth/credentials"
	"github.com/rdiego26/muti-user-task-manager-api/internal/auth/handler"
	"github.com/rdiego26/muti-user-task-manager-api/internal/config"
	"github.com/rdiego26/muti-user-task-manager-api/internal/middleware"
	"github.com/rdiego26/muti-user-task-manager-api/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var sessionStore session.Store
	if cfg.SessionBackend == "memory" {
		sessionStore = session.NewMemoryStore()
	} else {
		sessionStore = session.NewRedisStore(infra.Redis.Client)
	}

	credentialService := credentials.NewService(infra.DB)

	sessionService := session.NewService(
		sessionStore,
		credentialService,
		cfg.SessionTTL,
		cfg.SessionTokenBytes,
	)

	authHandler := handler.NewHandler(sessionService, credentialService)

	authMiddleware := middleware.NewAuthMiddleware(sessionService)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	api.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.UserIDFromContext(c.Request.Context())
		c.JSON(200, gin.H{
			"user_id": userID,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
