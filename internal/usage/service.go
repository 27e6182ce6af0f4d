// Package usage tracks token consumption of text generation calls.
package usage

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"tokpee/internal/metrics"
)

// maxRecords bounds the in-memory history; older records are dropped first
const maxRecords = 1000

// Service keeps recent usage records in memory
type Service struct {
	mu      sync.RWMutex
	records []Record
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new usage service. m may be nil.
func NewService(logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		metrics: m,
		logger:  logger.Named("usage"),
	}
}

// RecordUsage stores usage for one operation. Tracking problems are logged,
// never returned, so callers are not failed by bookkeeping.
func (s *Service) RecordUsage(operation string, usage *UsageData) {
	if s == nil {
		return
	}
	if usage == nil {
		return
	}
	if usage.PromptTokens < 0 || usage.CompletionTokens < 0 || usage.TotalTokens < 0 {
		s.logger.Warn("invalid token counts", zap.Any("usage", usage))
		return
	}

	rec := Record{
		Operation:        operation,
		Provider:         usage.Provider,
		Model:            usage.Model,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
		CreatedAt:        time.Now(),
	}

	s.mu.Lock()
	s.records = append(s.records, rec)
	if len(s.records) > maxRecords {
		s.records = append([]Record(nil), s.records[len(s.records)-maxRecords:]...)
	}
	s.mu.Unlock()

	s.metrics.ObserveTokens(usage.Model, usage.PromptTokens, usage.CompletionTokens)
}

// Records returns the retained records, oldest first
func (s *Service) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.records...)
}

// Summary totals the retained records
func (s *Service) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{ByModel: make(map[string]int)}
	for _, r := range s.records {
		sum.Calls++
		sum.PromptTokens += r.PromptTokens
		sum.CompletionTokens += r.CompletionTokens
		sum.TotalTokens += r.TotalTokens
		sum.ByModel[r.Model] += r.TotalTokens
	}
	return sum
}
