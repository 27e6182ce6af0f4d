package llm

import (
	"context"
	"sync"

	"tokpee/ports"
)

// MockTextGenerator is a canned text generator for tests and offline runs
type MockTextGenerator struct {
	Response string // Set this for testing
	Error    error  // Set this to simulate errors

	mu       sync.Mutex
	requests []ports.GenerationRequest
}

var _ ports.TextGenerator = (*MockTextGenerator)(nil)

func (m *MockTextGenerator) Generate(ctx context.Context, req ports.GenerationRequest) (*ports.GenerationResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Error != nil {
		return nil, m.Error
	}
	return &ports.GenerationResponse{Text: m.Response}, nil
}

// Requests returns every request received so far
func (m *MockTextGenerator) Requests() []ports.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.GenerationRequest(nil), m.requests...)
}
