package ai

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tokpee/domain/chat"
	"tokpee/domain/core"
	"tokpee/domain/dataset"
	"tokpee/domain/inventory"
	apperrors "tokpee/internal/errors"
	"tokpee/internal/metrics"
	"tokpee/internal/replenishment"
	"tokpee/internal/usage"
	"tokpee/ports"
)

// Replies shown when no usable insight comes back
const (
	InsightUnavailable = "Insight tidak tersedia."
	InsightFallback    = "Koneksi AI terputus. Silakan coba sesaat lagi."
)

const (
	operationInsight  = "insight"
	generationService = "text generation"
)

// ErrGeneratorUnavailable is logged when no text generator is configured
var ErrGeneratorUnavailable = errors.New("text generator not configured")

// Deps are the collaborators shared by the advisor and the assistant
type Deps struct {
	Generator ports.TextGenerator // nil answers every request with the fallback
	Prompts   *PromptManager
	Limiter   *Limiter
	Usage     *usage.Service
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Prompts == nil {
		d.Prompts = NewPromptManager("")
	}
	if d.Limiter == nil {
		d.Limiter = NewLimiter(1, 0)
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

// Insight is a generated restock strategy for one product
type Insight struct {
	ProductID   core.ProductID `json:"product_id"`
	Text        string         `json:"text"`
	HTML        string         `json:"html"`
	Fallback    bool           `json:"fallback"`
	Model       string         `json:"model"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// RestockAdvisor asks a text generator for a short restock strategy
type RestockAdvisor struct {
	deps   Deps
	model  string
	logger *zap.Logger
}

// NewRestockAdvisor creates an advisor generating with model
func NewRestockAdvisor(deps Deps, model string) *RestockAdvisor {
	deps = deps.withDefaults()
	return &RestockAdvisor{
		deps:   deps,
		model:  model,
		logger: deps.Logger.Named("insight"),
	}
}

// Advise returns a restock strategy for record. Generation failures are
// logged and answered with fallback text; they are never returned.
func (a *RestockAdvisor) Advise(ctx context.Context, record inventory.Record) Insight {
	start := time.Now()
	insight := Insight{
		ProductID:   record.ProductID,
		Model:       a.model,
		GeneratedAt: start,
	}

	text, err := a.generate(ctx, record)
	switch {
	case err != nil:
		a.logger.Warn("restock insight failed",
			zap.String("product_id", record.ProductID.String()),
			zap.Error(err))
		insight.Text = InsightFallback
		insight.Fallback = true
	case strings.TrimSpace(text) == "":
		insight.Text = InsightUnavailable
		insight.Fallback = true
	default:
		insight.Text = text
	}
	insight.HTML = RenderMarkdown(insight.Text)

	result := metrics.ResultOK
	if insight.Fallback {
		result = metrics.ResultFallback
	}
	a.deps.Metrics.ObserveGeneration(operationInsight, result, time.Since(start))
	return insight
}

func (a *RestockAdvisor) generate(ctx context.Context, record inventory.Record) (string, error) {
	if a.deps.Generator == nil {
		return "", ErrGeneratorUnavailable
	}

	system, err := a.deps.Prompts.LoadPrompt(PromptRestockSystem)
	if err != nil {
		return "", err
	}
	prompt, err := a.deps.Prompts.RenderPrompt(PromptRestockInsight, map[string]string{
		"PRODUCT":      record.Name,
		"STOCK":        strconv.Itoa(record.OnHandStock),
		"DAILY_SALES":  dataset.FormatNumber(record.AvgDailySales),
		"LEAD_TIME":    strconv.Itoa(record.LeadTimeDays),
		"SAFETY_STOCK": strconv.Itoa(record.SafetyStock),
		"FACTS":        strings.Join(CompileRestockFacts(record, replenishment.Compute(record)), "\n"),
	})
	if err != nil {
		return "", err
	}

	var resp *ports.GenerationResponse
	err = a.deps.Limiter.Do(ctx, func(ctx context.Context) error {
		var genErr error
		resp, genErr = a.deps.Generator.Generate(ctx, ports.GenerationRequest{
			Model:             a.model,
			SystemInstruction: system,
			Messages:          []chat.Message{{Role: chat.RoleUser, Text: prompt}},
		})
		return genErr
	})
	if err != nil {
		return "", apperrors.ExternalServiceError(generationService, err)
	}

	a.deps.Usage.RecordUsage(operationInsight, resp.Usage)
	return resp.Text, nil
}
