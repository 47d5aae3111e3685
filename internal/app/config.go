package app

import (
	"github.com/yungbote/contacts-backend/internal/platform/envutil"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
)

type Config struct {
	Port        string
	Environment string
	Version     string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:        envutil.String("PORT", "8080", log),
		Environment: envutil.String("APP_ENV", "development", log),
		Version:     envutil.String("APP_VERSION", "dev", log),
	}
}
