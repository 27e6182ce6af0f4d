package ai

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tokpee/ports"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, req ports.GenerationRequest) (*ports.GenerationResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*ports.GenerationResponse)
	return resp, args.Error(1)
}
