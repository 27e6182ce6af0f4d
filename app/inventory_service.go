package app

import (
	"context"

	"go.uber.org/zap"

	"tokpee/ai"
	"tokpee/domain/core"
	"tokpee/domain/inventory"
	"tokpee/internal/replenishment"
	"tokpee/internal/session"
	"tokpee/ports"
)

// ProductStatus pairs a product with its replenishment metrics
type ProductStatus struct {
	Record  inventory.Record  `json:"product"`
	Metrics inventory.Metrics `json:"metrics"`
}

// InventoryService serves the restock view
type InventoryService struct {
	repo    ports.InventoryRepository
	advisor *ai.RestockAdvisor
	state   *session.AppState
	logger  *zap.Logger
}

// NewInventoryService creates an inventory service
func NewInventoryService(repo ports.InventoryRepository, advisor *ai.RestockAdvisor, state *session.AppState, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		repo:    repo,
		advisor: advisor,
		state:   state,
		logger:  logger.Named("inventory"),
	}
}

func statusOf(r inventory.Record) ProductStatus {
	return ProductStatus{Record: r, Metrics: replenishment.Compute(r)}
}

// List returns every product with its metrics
func (s *InventoryService) List(ctx context.Context) ([]ProductStatus, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductStatus, 0, len(records))
	for _, r := range records {
		out = append(out, statusOf(r))
	}
	return out, nil
}

// Metrics returns one product's metrics and selects it in the restock view
func (s *InventoryService) Metrics(ctx context.Context, id core.ProductID) (ProductStatus, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return ProductStatus{}, err
	}
	s.state.SelectProduct(id)
	return statusOf(r), nil
}

// Save creates or replaces a product
func (s *InventoryService) Save(ctx context.Context, record inventory.Record) (ProductStatus, error) {
	saved, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return ProductStatus{}, err
	}
	s.logger.Info("product saved", zap.String("product_id", saved.ProductID.String()))
	return statusOf(saved), nil
}

// AdjustStock applies a stock delta and returns the refreshed metrics
func (s *InventoryService) AdjustStock(ctx context.Context, id core.ProductID, delta int) (ProductStatus, error) {
	r, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return ProductStatus{}, err
	}
	return statusOf(r), nil
}

// Insight asks the advisor for a restock strategy for one product
func (s *InventoryService) Insight(ctx context.Context, id core.ProductID) (ai.Insight, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return ai.Insight{}, err
	}
	return s.advisor.Advise(ctx, r), nil
}
