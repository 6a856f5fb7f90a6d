package generator

import "context"

// LLMClient is the single text-completion capability the pipelines depend on.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings 提供给具体实现的连接配置。
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

const (
	DefaultModel              = "claude-3-5-sonnet-20241022"
	DefaultMaxTokens          = 4096
	DefaultDraftTemperature   = 0.7
	DefaultRefinerTemperature = 0.0

	// DefaultSuggestionCount is used by the full generation flow.
	DefaultSuggestionCount = 10
	// DefaultSuggestOnlyCount is used when only suggestions are written out.
	DefaultSuggestOnlyCount = 5
)

// GenerationSettings are the per-call sampling parameters.
type GenerationSettings struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// DraftSettings returns the settings used by the post generation chain.
func DraftSettings(model string) GenerationSettings {
	if model == "" {
		model = DefaultModel
	}
	return GenerationSettings{Model: model, MaxTokens: DefaultMaxTokens, Temperature: DefaultDraftTemperature}
}

// RefinerSettings returns deterministic settings for section rewrites.
func RefinerSettings(model string) GenerationSettings {
	s := DraftSettings(model)
	s.Temperature = DefaultRefinerTemperature
	return s
}
