package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"
)

// Completer is the surface the analyzers consume. Implementations send a
// system prompt plus a user prompt and return the raw model output, which
// is expected to be a single JSON object.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var providerBaseURLs = map[string]string{
	"groq":   "https://api.groq.com/openai/v1",
	"openai": "https://api.openai.com/v1",
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	model string
	http  *resty.Client
}

// NewClient resolves the configured "provider:model" pair to a base URL and
// builds the HTTP client. An explicit LLM_BASE_URL overrides the provider
// mapping, which allows pointing at any compatible gateway.
func NewClient(config Config) (*Client, error) {
	provider, model, found := strings.Cut(config.Model, ":")
	if !found {
		return nil, fmt.Errorf("model %q must be in provider:model form", config.Model)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		mapped, ok := providerBaseURLs[provider]
		if !ok {
			return nil, fmt.Errorf("unknown llm provider %q and no LLM_BASE_URL set", provider)
		}
		baseURL = mapped
	}

	if config.APIKey == "" {
		logger.Warn("LLM_API_KEY is empty, completion requests will likely be rejected")
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(config.Timeout).
		SetAuthToken(config.APIKey)

	return &Client{
		model: model,
		http:  httpClient,
	}, nil
}

func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	var parsed chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&parsed).
		SetError(&parsed).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		if parsed.Error != nil {
			return "", fmt.Errorf("chat completion HTTP %d: %s", resp.StatusCode(), parsed.Error.Message)
		}
		return "", fmt.Errorf("chat completion HTTP %d: %s", resp.StatusCode(), resp.String())
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("chat completion returned empty content")
	}

	logger.WithFields(map[string]interface{}{
		"model": c.model,
		"bytes": len(content),
	}).Debug("chat completion received")

	return content, nil
}
