package ports

import (
	"context"

	"tokpee/domain/chat"
)

// UsageData represents raw usage data from text generation provider APIs
type UsageData struct {
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	Model            string `json:"model"`
	Provider         string `json:"provider"`
}

// GenerationRequest is a single call to a text generation model
type GenerationRequest struct {
	Model             string
	SystemInstruction string
	Messages          []chat.Message
	MaxTokens         int
}

// GenerationResponse carries the generated text with usage data
type GenerationResponse struct {
	Text  string
	Usage *UsageData
}

// TextGenerator is implemented by text generation providers
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResponse, error)
}
