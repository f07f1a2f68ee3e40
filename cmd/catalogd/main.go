package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/glowcart/catalog/config"
	"github.com/glowcart/catalog/internal/app"
	"github.com/glowcart/catalog/internal/restapi"
	"github.com/glowcart/catalog/internal/webserver"
)

var (
	showHelp = flag.Bool("h", false, "show help")
	conffile = flag.String("c", "catalog.yml", "config file path")
	port     = flag.Int("p", 0, "listen port override")
	demo     = flag.Bool("demo", false, "run with an in-memory seeded store")
)

func main() {
	flag.Parse()
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)
	if *port > 0 {
		cfg.Web.Port = *port
	}

	application := app.NewApplication(cfg)
	if err := application.Init(*demo); err != nil {
		zap.S().Fatalf("application init failed: %v", err)
	}

	server := webserver.New(cfg)
	api := restapi.NewProductAPI(application.Repository(), application.Bus(), cfg.Web.UploadDir)
	api.Register(server)

	application.StartScheduler()

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("web server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown error", zap.Error(err))
	}
	application.Stop()
}
