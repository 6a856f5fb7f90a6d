package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderDeepSeek  = "deepseek"

	DefaultPath             = "config/config.json"
	DefaultPostsDir         = "posts"
	DefaultAuthorID         = 1
	DefaultAnthropicBaseURL = "https://api.anthropic.com/v1/"
)

// Config is the runtime configuration. Everything is optional on disk; the
// only hard requirement is an API key, and only when a real model is called.
type Config struct {
	LLM         *LLMConfig `json:"llm,omitempty"`
	PostsDir    string     `json:"posts_dir,omitempty"`
	AuthorID    int        `json:"author_id,omitempty"`
	SiteBaseURL string     `json:"site_base_url,omitempty"`
}

// LLMConfig selects the completion backend. APIKey may be set in the file but
// the variable named by APIKeyEnv wins when present.
type LLMConfig struct {
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
}

// Load reads .env (if any), then the JSON file at path (if it exists), then
// environment overrides, and fills defaults. It does not validate; callers
// that need a credential call Validate.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LLM == nil {
		c.LLM = &LLMConfig{}
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderAnthropic
	}
	if c.PostsDir == "" {
		c.PostsDir = DefaultPostsDir
	}
	if c.AuthorID == 0 {
		c.AuthorID = DefaultAuthorID
	}
}

func (c *Config) applyEnv() {
	c.LLM.Provider = getEnvOrDefault("LLM_PROVIDER", c.LLM.Provider)
	c.LLM.Model = getEnvOrDefault("LLM_MODEL", c.LLM.Model)
	c.LLM.BaseURL = getEnvOrDefault("LLM_BASE_URL", c.LLM.BaseURL)
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = defaultKeyEnv(c.LLM.Provider)
	}
	c.LLM.APIKey = getEnvOrDefault(c.LLM.APIKeyEnv, c.LLM.APIKey)
	if c.LLM.BaseURL == "" && c.LLM.Provider == ProviderAnthropic {
		c.LLM.BaseURL = DefaultAnthropicBaseURL
	}
}

// Validate checks what a real model call needs.
func (c Config) Validate() error {
	if c.LLM == nil || c.LLM.Provider == "" {
		return &ConfigError{Field: "llm.provider", Message: "llm provider is required"}
	}
	switch c.LLM.Provider {
	case ProviderAnthropic, ProviderOpenAI:
	case ProviderDeepSeek:
		// DeepSeek only exposes an OpenAI-compatible gateway, so the address must be given.
		if c.LLM.BaseURL == "" {
			return &ConfigError{Field: "llm.base_url", Message: "provider deepseek requires base_url (OpenAI-compatible endpoint)"}
		}
	default:
		return &ConfigError{Field: "llm.provider", Message: fmt.Sprintf("provider %s not supported", c.LLM.Provider)}
	}
	if c.LLM.APIKey == "" {
		return &ConfigError{Field: c.LLM.APIKeyEnv, Message: "API key is required"}
	}
	return nil
}

func defaultKeyEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	default:
		return "ANTHROPIC_API_KEY"
	}
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
