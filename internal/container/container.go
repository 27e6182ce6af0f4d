package container

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tokpee/adapters/llm"
	"tokpee/ai"
	"tokpee/app"
	"tokpee/domain/inventory"
	"tokpee/internal/catalog"
	"tokpee/internal/config"
	"tokpee/internal/metrics"
	"tokpee/internal/session"
	"tokpee/internal/usage"
	"tokpee/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// Session and data
	State   *session.AppState
	Catalog *catalog.Catalog

	// AI components
	Generator ports.TextGenerator
	Usage     *usage.Service
	Advisor   *ai.RestockAdvisor
	Assistant *ai.Assistant

	// Application services
	Datasets       *app.DatasetService
	Inventory      *app.InventoryService
	AssistantChats *app.AssistantService
}

// New creates a new dependency injection container. generator may be nil, in
// which case a Gemini client is created when an API key is configured.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, generator ports.TextGenerator) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Metrics:   metrics.New(),
		State:     session.NewAppState(),
		Generator: generator,
	}

	if err := c.initCatalog(); err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}
	if err := c.initAIComponents(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize AI components: %w", err)
	}
	c.initServices()

	logger.Info("container initialized",
		zap.String("session_id", c.State.Snapshot().SessionID.String()),
		zap.Bool("generation_enabled", c.Generator != nil))
	return c, nil
}

// initCatalog seeds the product catalog from the configured file or the sample products
func (c *Container) initCatalog() error {
	var (
		seed []inventory.Record
		err  error
	)
	if path := c.Config.Data.CatalogFile; path != "" {
		seed, err = catalog.LoadSeedFile(path)
		if err != nil {
			return err
		}
		c.Logger.Info("catalog seeded from file", zap.String("path", path), zap.Int("products", len(seed)))
	} else {
		seed = catalog.DefaultRecords()
	}

	c.Catalog, err = catalog.New(c.Logger, seed)
	return err
}

// initAIComponents wires the text generator, prompts and the two AI features
func (c *Container) initAIComponents(ctx context.Context) error {
	if c.Generator == nil && c.Config.GenerationEnabled() {
		client, err := llm.NewGeminiClient(ctx, c.Config.AI.GeminiAPIKey)
		if err != nil {
			return err
		}
		c.Generator = client
	}
	if c.Generator == nil {
		c.Logger.Warn("no text generator configured, AI features answer with fallback text")
	}

	c.Usage = usage.NewService(c.Logger, c.Metrics)
	deps := ai.Deps{
		Generator: c.Generator,
		Prompts:   ai.NewPromptManager(c.Config.AI.PromptsDir),
		Limiter:   ai.NewLimiter(int64(c.Config.AI.MaxConcurrent), c.Config.AI.Timeout),
		Usage:     c.Usage,
		Metrics:   c.Metrics,
		Logger:    c.Logger,
	}
	c.Advisor = ai.NewRestockAdvisor(deps, c.Config.AI.InsightModel)
	c.Assistant = ai.NewAssistant(deps, c.Config.AI.AssistantModel)
	return nil
}

// initServices creates the application services on top of the shared state
func (c *Container) initServices() {
	c.Datasets = app.NewDatasetService(c.State, c.Metrics, c.Logger)
	c.Inventory = app.NewInventoryService(c.Catalog, c.Advisor, c.State, c.Logger)
	c.AssistantChats = app.NewAssistantService(c.Assistant, c.State)
}

// Shutdown releases resources held by the container
func (c *Container) Shutdown(ctx context.Context) error {
	_ = c.Logger.Sync()
	return nil
}
