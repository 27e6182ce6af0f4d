package ai

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"tokpee/domain/chat"
	apperrors "tokpee/internal/errors"
	"tokpee/internal/metrics"
	"tokpee/ports"
)

// Replies appended when the assistant cannot answer
const (
	AssistantEmptyReply = "Maaf, saya sedang mengalami kendala teknis."
	AssistantFallback   = "Maaf, koneksi ke otak AI terputus. Coba lagi dalam beberapa saat ya!"
)

const operationAssistant = "assistant"

// Assistant answers product research questions in a running conversation
type Assistant struct {
	deps   Deps
	model  string
	logger *zap.Logger
}

// NewAssistant creates an assistant generating with model
func NewAssistant(deps Deps, model string) *Assistant {
	deps = deps.withDefaults()
	return &Assistant{
		deps:   deps,
		model:  model,
		logger: deps.Logger.Named("assistant"),
	}
}

// Reply appends input and the assistant's answer to history and returns the
// new conversation. history is not modified. Only blank input is an error;
// generation failures append a fallback answer instead.
func (a *Assistant) Reply(ctx context.Context, history []chat.Message, input string) ([]chat.Message, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, apperrors.InvalidInput("message cannot be empty")
	}

	start := time.Now()
	conversation := make([]chat.Message, 0, len(history)+2)
	conversation = append(conversation, history...)
	conversation = append(conversation, chat.Message{Role: chat.RoleUser, Text: input, At: start})

	text, err := a.generate(ctx, conversation)
	result := metrics.ResultOK
	switch {
	case err != nil:
		a.logger.Warn("assistant reply failed", zap.Error(err))
		text = AssistantFallback
		result = metrics.ResultFallback
	case strings.TrimSpace(text) == "":
		text = AssistantEmptyReply
		result = metrics.ResultFallback
	}
	a.deps.Metrics.ObserveGeneration(operationAssistant, result, time.Since(start))

	conversation = append(conversation, chat.Message{
		Role: chat.RoleAssistant,
		Text: text,
		HTML: RenderMarkdown(text),
		At:   time.Now(),
	})
	return conversation, nil
}

func (a *Assistant) generate(ctx context.Context, conversation []chat.Message) (string, error) {
	if a.deps.Generator == nil {
		return "", ErrGeneratorUnavailable
	}
	system, err := a.deps.Prompts.LoadPrompt(PromptAssistantSystem)
	if err != nil {
		return "", err
	}

	var resp *ports.GenerationResponse
	err = a.deps.Limiter.Do(ctx, func(ctx context.Context) error {
		var genErr error
		resp, genErr = a.deps.Generator.Generate(ctx, ports.GenerationRequest{
			Model:             a.model,
			SystemInstruction: system,
			Messages:          conversation,
		})
		return genErr
	})
	if err != nil {
		return "", apperrors.ExternalServiceError(generationService, err)
	}

	a.deps.Usage.RecordUsage(operationAssistant, resp.Usage)
	return resp.Text, nil
}
