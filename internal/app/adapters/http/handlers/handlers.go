package handlers

import (
	"wordscan/internal/app/infrastructure/config"
	"wordscan/internal/app/ports"
	"wordscan/pkg/logger"
)

type Handlers struct {
	log      logger.Logger
	manager  *config.Manager
	registry ports.RegistryPort
	stats    ports.StatsPort
}

func New(log logger.Logger, manager *config.Manager, registry ports.RegistryPort, stats ports.StatsPort) *Handlers {
	return &Handlers{
		log:      log,
		manager:  manager,
		registry: registry,
		stats:    stats,
	}
}
