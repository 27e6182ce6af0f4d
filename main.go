package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tokpee/internal/config"
	"tokpee/internal/container"
	"tokpee/internal/logging"
	"tokpee/ui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(appConfig.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appContainer, err := container.New(ctx, appConfig, logger, nil)
	if err != nil {
		logger.Fatal("failed to create application container", zap.Error(err))
	}
	defer appContainer.Shutdown(context.Background())

	server := ui.NewServer(ui.Deps{
		Datasets:       appContainer.Datasets,
		Inventory:      appContainer.Inventory,
		Assistant:      appContainer.AssistantChats,
		State:          appContainer.State,
		Usage:          appContainer.Usage,
		MaxUploadBytes: appConfig.Server.MaxUploadBytes,
	}, logger)

	var admin *http.Server
	if appConfig.Admin.Enabled {
		admin = &http.Server{
			Addr:              ":" + appConfig.Admin.Port,
			Handler:           ui.NewAdminRouter(appContainer.Metrics.Handler()),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("admin server starting", zap.String("addr", admin.Addr))
			if err := admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("admin server failed", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(":" + appConfig.Server.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("dashboard server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("dashboard server shutdown", zap.Error(err))
	}
	if admin != nil {
		if err := admin.Shutdown(shutdownCtx); err != nil {
			logger.Warn("admin server shutdown", zap.Error(err))
		}
	}
}
