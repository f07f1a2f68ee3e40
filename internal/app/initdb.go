package app

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/glowcart/catalog/internal/domain"
)

func (a *Application) initDB() error {
	cfg := a.appConfig.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port)

	level := logger.Silent
	if cfg.Debug {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return errors.Wrap(err, "connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "acquire connection pool")
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(domain.Tables...); err != nil {
		return errors.Wrap(err, "migrate tables")
	}

	a.gormDB = db
	return nil
}
