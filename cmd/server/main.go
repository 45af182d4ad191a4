package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gostorefront/catalog/internal/config"
	"github.com/gostorefront/catalog/internal/db"
	"github.com/gostorefront/catalog/internal/events"
	"github.com/gostorefront/catalog/internal/httpserver"
	"github.com/gostorefront/catalog/internal/logging"
	loggingmw "github.com/gostorefront/catalog/internal/middleware/logging"
	"github.com/gostorefront/catalog/internal/repo"
	"github.com/gostorefront/catalog/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DSN())
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	var producer *events.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = events.NewProducer(strings.Split(cfg.KAFKA_ADDRESS, ","))
		defer producer.Close()
	}

	gormRepo := repo.NewGormRepo(gdb)

	cartHandler := &httpserver.CartHTTP{
		Svc:      &service.CartService{Repo: gormRepo},
		Producer: producer,
	}
	catalogHandler := &httpserver.CatalogHTTP{
		Svc: &service.CatalogService{Repo: gormRepo},
	}
	authHandler := &httpserver.AuthHTTP{
		Svc: &service.AuthService{Repo: gormRepo, JWTSecret: []byte(cfg.JWT_SECRET)},
	}

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		CartHandler:    cartHandler,
		CatalogHandler: catalogHandler,
		AuthHandler:    authHandler,
		JWTSecret:      []byte(cfg.JWT_SECRET),
	})

	port := cfg.SERVER_PORT
	if port == "" {
		port = "8080"
	}

	go func() {
		logger.Info("starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
