package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"candydelivery/api"
	"candydelivery/cmd"
	httpadapter "candydelivery/internal/adapters/in/http"
	"candydelivery/internal/adapters/out/postgres/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level, _ := configs.SlogLevel()
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if configs.MigrateOnStart {
		if err = migrations.Up(configs.DSN()); err != nil {
			log.Fatalf("Error applying migrations: %v", err)
		}
		slogger.Info("Schema migrations applied")
	}

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	doc, err := api.Load()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, slogger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e, err := httpadapter.NewRouter(app.CreateServer(doc), doc, slogger.With("component", "http_access"))
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	startWebServer(e, configs.HTTPPort, slogger)

	jobManager.StopAll()
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

// startWebServer serves until SIGINT or SIGTERM, then drains in-flight requests.
func startWebServer(e *echo.Echo, port string, slogger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slogger.Info("HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slogger.Error("HTTP server shutdown failed", "error", err)
	}
}
