package app

import (
	"github.com/yungbote/contacts-backend/internal/db"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/repos"
)

type Repos struct {
	User    repos.UserRepo
	Address repos.AddressRepo
	Link    repos.LinkRepo
}

func wireRepos(exec db.Executor, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:    repos.NewUserRepo(exec, log),
		Address: repos.NewAddressRepo(exec, log),
		Link:    repos.NewLinkRepo(exec, log),
	}
}
