// Package ui serves the dashboard's JSON API over gin and the admin
// endpoints over chi.
package ui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tokpee/app"
	"tokpee/internal/session"
	"tokpee/internal/usage"
)

const defaultMaxUploadBytes = 50 << 20

// Deps are the services the server routes to
type Deps struct {
	Datasets       *app.DatasetService
	Inventory      *app.InventoryService
	Assistant      *app.AssistantService
	State          *session.AppState
	Usage          *usage.Service
	MaxUploadBytes int64
}

// Server represents the dashboard web server
type Server struct {
	router *gin.Engine
	deps   Deps
	logger *zap.Logger
	http   *http.Server
}

// NewServer creates a server and registers every route
func NewServer(deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = defaultMaxUploadBytes
	}

	s := &Server{
		router: gin.New(),
		deps:   deps,
		logger: logger.Named("http"),
	}
	s.router.MaxMultipartMemory = deps.MaxUploadBytes
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")

	datasets := api.Group("/datasets")
	datasets.POST("", s.handleUploadDataset)
	datasets.GET("/current", s.handleCurrentDataset)
	datasets.GET("/current/rows", s.handleDatasetRows)
	datasets.GET("/current/aggregate", s.handleAggregate)
	datasets.GET("/current/profile", s.handleProfile)
	datasets.GET("/current/export", s.handleExport)

	inventory := api.Group("/inventory")
	inventory.GET("", s.handleListInventory)
	inventory.PUT("/:id", s.handleSaveProduct)
	inventory.GET("/:id/metrics", s.handleProductMetrics)
	inventory.POST("/:id/adjust", s.handleAdjustStock)
	inventory.POST("/:id/insight", s.handleInsight)

	api.GET("/assistant", s.handleAssistantHistory)
	api.POST("/assistant", s.handleAssistantMessage)

	api.GET("/state", s.handleState)
	api.PUT("/state/tab", s.handleSetTab)
	api.PUT("/state/selection", s.handleSelectProduct)

	api.GET("/usage", s.handleUsage)
}

// Start serves on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("starting dashboard API", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"session_id": s.deps.State.Snapshot().SessionID,
	})
}
