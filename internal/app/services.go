package app

import (
	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/services"
)

type Services struct {
	User      services.UserService
	Address   services.AddressService
	Lifecycle services.LifecycleService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		User:      services.NewUserService(log, reposet.User),
		Address:   services.NewAddressService(log, reposet.Address),
		Lifecycle: services.NewLifecycleService(log, reposet.User, reposet.Address, reposet.Link),
	}
}
