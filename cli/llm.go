package cli

import (
	"fmt"

	"github.com/scionsamurai/tonights-review/config"
	"github.com/scionsamurai/tonights-review/generator"
)

// buildLLM picks the completion backend. Dry runs never need a credential;
// everything else is validated before any prompt is sent.
func buildLLM(cfg config.Config, dryRun bool, suggestions int) (generator.LLMClient, error) {
	if dryRun {
		return generator.MockLLM{Suggestions: suggestions}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.LLM.Provider {
	case config.ProviderAnthropic, config.ProviderOpenAI, config.ProviderDeepSeek:
		// all three speak the OpenAI chat completions protocol
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
