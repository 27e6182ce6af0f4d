package usage

import (
	"time"

	"tokpee/ports"
)

// UsageData represents raw usage data from text generation provider APIs
type UsageData = ports.UsageData

// Record is one generation call's token usage
type Record struct {
	Operation        string    `json:"operation"`
	Provider         string    `json:"provider"`
	Model            string    `json:"model"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	TotalTokens      int       `json:"total_tokens"`
	CreatedAt        time.Time `json:"created_at"`
}

// Summary totals usage per model
type Summary struct {
	Calls            int            `json:"calls"`
	PromptTokens     int            `json:"prompt_tokens"`
	CompletionTokens int            `json:"completion_tokens"`
	TotalTokens      int            `json:"total_tokens"`
	ByModel          map[string]int `json:"total_tokens_by_model"`
}
