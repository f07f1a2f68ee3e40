package webserver

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/glowcart/catalog/config"
)

// WebServer wraps the echo instance, the /api/products group and the
// static uploads mount.
type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
	api  *echo.Group
}

func New(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(zapLogger())

	// Uploaded files are served back from the upload directory
	e.Static("/uploads", cfg.Web.UploadDir)

	return &WebServer{
		cfg:  cfg,
		root: e,
		api:  e.Group("/api/products"),
	}
}

// Echo exposes the underlying instance for tests
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func (s *WebServer) ApiGET(path string, h echo.HandlerFunc) {
	s.api.GET(path, h)
}

func (s *WebServer) ApiPOST(path string, h echo.HandlerFunc) {
	s.api.POST(path, h)
}

func (s *WebServer) ApiPUT(path string, h echo.HandlerFunc) {
	s.api.PUT(path, h)
}

func (s *WebServer) ApiDELETE(path string, h echo.HandlerFunc) {
	s.api.DELETE(path, h)
}

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.L().Info("starting web server", zap.String("addr", addr))
	return s.root.Start(addr)
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

func zapLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			zap.L().Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)),
			)
			return err
		}
	}
}
