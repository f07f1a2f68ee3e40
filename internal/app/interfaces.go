package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/glowcart/catalog/config"
	"github.com/glowcart/catalog/internal/catalog"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// RepositoryProvider provides catalog data access
type RepositoryProvider interface {
	Repository() catalog.ProductRepository
}

// BusProvider provides the process-wide event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}
