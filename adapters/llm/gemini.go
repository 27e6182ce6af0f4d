package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"tokpee/domain/chat"
	"tokpee/ports"
)

const providerGemini = "gemini"

// GeminiClient implements ports.TextGenerator on Google's Gemini API
type GeminiClient struct {
	client *genai.Client
}

var _ ports.TextGenerator = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini text generator for apiKey
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Generate sends the conversation in req to the model and returns its reply
func (c *GeminiClient) Generate(ctx context.Context, req ports.GenerationRequest) (*ports.GenerationResponse, error) {
	if strings.TrimSpace(req.Model) == "" {
		return nil, fmt.Errorf("missing model")
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages to send")
	}

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, toContents(req.Messages), config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	out := &ports.GenerationResponse{Text: resp.Text()}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &ports.UsageData{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
			Model:            req.Model,
			Provider:         providerGemini,
		}
	}
	return out, nil
}

// toContents maps conversation turns onto Gemini roles; assistant turns are
// sent as the model's.
func toContents(messages []chat.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == chat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	return contents
}
