package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openaiClient serves both the hosted OpenAI provider and custom
// OpenAI-compatible servers (LM Studio, Ollama, vLLM) via a base URL.
type openaiClient struct {
	client   *openai.Client
	model    string
	provider string
	stats    *Stats
}

func newOpenAIClient(cfg Config, timeout time.Duration, stats *Stats) *openaiClient {
	key := cfg.APIKey
	if cfg.Provider == ProviderCustom && (key == "" || key == "none") {
		// Some local servers reject requests with an Authorization header.
		key = ""
	}
	clientCfg := openai.DefaultConfig(key)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/") + "/v1"
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &openaiClient{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		stats:    stats,
	}
}

func (c *openaiClient) Analyze(ctx context.Context, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: AnalysisPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage(text)},
		},
		Temperature: 0.1,
	}
	if c.provider == ProviderOpenAI {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if c.stats != nil {
		c.stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return "", &CallError{Provider: c.provider, Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return "", &CallError{Provider: c.provider, Message: "empty response"}
	}
	return resp.Choices[0].Message.Content, nil
}
