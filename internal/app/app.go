package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"

	"github.com/glowcart/catalog/config"
	"github.com/glowcart/catalog/internal/catalog"
	"github.com/glowcart/catalog/internal/domain"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	repo      catalog.ProductRepository
	bus       EventBus.Bus
	sched     *cron.Cron
}

// Ensure Application implements all provider interfaces
var (
	_ DBProvider         = (*Application)(nil)
	_ ConfigProvider     = (*Application)(nil)
	_ RepositoryProvider = (*Application)(nil)
	_ BusProvider        = (*Application)(nil)
	_ SchedulerProvider  = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

func (a *Application) Repository() catalog.ProductRepository {
	return a.repo
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// OverrideRepository replaces the repository (used in tests)
func (a *Application) OverrideRepository(repo catalog.ProductRepository) {
	a.repo = repo
}

// Init wires logging, storage, the event bus and background jobs.
// With demo set, an in-memory seeded store replaces the database.
func (a *Application) Init(demo bool) error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	a.bus = EventBus.New()
	a.registerEventSubscribers()

	a.sched = cron.New()
	if err := a.registerJobs(); err != nil {
		return err
	}

	if demo {
		repo := catalog.NewMemoryProductRepository()
		repo.Seed(demoProducts...)
		a.repo = repo
		zap.L().Info("using in-memory demo store", zap.Int("seeded", len(demoProducts)))
		return nil
	}
	if err := a.initDB(); err != nil {
		return err
	}
	a.repo = catalog.NewGormProductRepository(a.gormDB)
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zapConfig.EncoderConfig),
				zapcore.Lock(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core)
	} else {
		logger, _ = zapConfig.Build()
	}
	zap.ReplaceGlobals(logger)
}

// StartScheduler launches the cron loop
func (a *Application) StartScheduler() {
	a.sched.Start()
}

// Stop halts background jobs
func (a *Application) Stop() {
	if a.sched != nil {
		a.sched.Stop()
	}
}

var demoProducts = []domain.Product{
	{Name: "Mascara", Price: 15, Category: "Cosmetics", Description: "Volumizing mascara", Usages: "Apply to lashes"},
	{Name: "Lipstick", Price: 12.5, Category: "Cosmetics", Description: "Matte finish"},
	{Name: "Face Serum", Price: 29, Category: "Skincare", Usages: "Use morning and night"},
	{Name: "Cleanser", Price: 9.99, Category: "Skincare"},
}
