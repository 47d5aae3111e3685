package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/handlers"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/server"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	User    *handlers.UserHandler
	Address *handlers.AddressHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		User:    handlers.NewUserHandler(serviceset.User, serviceset.Lifecycle),
		Address: handlers.NewAddressHandler(serviceset.Address),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		HealthHandler:  handlerset.Health,
		UserHandler:    handlerset.User,
		AddressHandler: handlerset.Address,
	})
}
