package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/handlers"
	"github.com/yungbote/contacts-backend/internal/middleware"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	HealthHandler  *handlers.HealthHandler
	UserHandler    *handlers.UserHandler
	AddressHandler *handlers.AddressHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	if cfg.HealthHandler != nil {
		router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := router.Group("/api")
	{
		if cfg.UserHandler != nil {
			api.POST("/users", cfg.UserHandler.Create)
			api.GET("/users", cfg.UserHandler.List)
			api.GET("/users/:email", cfg.UserHandler.Get)
			api.PATCH("/users/:email/name", cfg.UserHandler.UpdateNames)
			api.DELETE("/users/:email", cfg.UserHandler.Delete)
		}
		if cfg.AddressHandler != nil {
			api.GET("/addresses/:key", cfg.AddressHandler.Get)
		}
	}

	return router
}
