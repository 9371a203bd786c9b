// Package llm turns raw document text into a structure-analysis JSON string
// via a client-configured provider.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider tags.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderCustom    = "custom"
)

// Config is the per-request LLM configuration supplied by the client.
type Config struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model"`
	BaseURL  string `json:"base_url"`
}

// Validate checks provider-specific requirements. The custom provider needs
// a base URL and may omit the API key; hosted providers need a real key.
func (c *Config) Validate() error {
	if c.Model == "" {
		c.Model = "gpt-4"
	}
	switch c.Provider {
	case ProviderOpenAI, ProviderAnthropic:
		if c.APIKey == "" || c.APIKey == "none" {
			return fmt.Errorf("api_key is required for provider %s", c.Provider)
		}
	case ProviderCustom:
		if c.BaseURL == "" {
			return fmt.Errorf("base_url is required for custom provider")
		}
	default:
		return fmt.Errorf("unsupported provider: %s", c.Provider)
	}
	return nil
}

// Client analyzes document text and returns the provider's raw response
// text, which may still be wrapped in a code fence.
type Client interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// New selects the provider implementation for cfg. The configuration must
// already be validated.
func New(cfg Config, timeout time.Duration, stats *Stats) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI, ProviderCustom:
		return newOpenAIClient(cfg, timeout, stats), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg, timeout, stats), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// CallError is a transport, auth or rate-limit failure from a provider.
type CallError struct {
	Provider string
	Message  string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("llm call (%s): %s", e.Provider, e.Message)
}

// StripCodeFence removes a markdown code fence wrapping the response, if
// present. Only the very start and very end are touched.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
