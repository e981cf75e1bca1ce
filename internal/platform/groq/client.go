package groq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/generation"
	"github.com/phrazzld/todo-api/internal/redact"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Client calls the chat completions endpoint with a single user message.
type Client struct {
	api         *openai.Client
	httpClient  *http.Client
	logger      *slog.Logger
	baseURL     string
	model       string
	temperature float32
}

var _ generation.Generator = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// NewClient builds a Groq generator from cfg. An empty base URL selects
// DefaultBaseURL.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: groq API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient:  http.DefaultClient,
		logger:      logger.With("component", "groq_client"),
		baseURL:     baseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
	for _, opt := range opts {
		opt(c)
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = c.baseURL
	apiCfg.HTTPClient = c.httpClient
	c.api = openai.NewClientWithConfig(apiCfg)
	return c, nil
}

// Generate implements generation.Generator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", c.mapError(ctx, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	text := resp.Choices[0].Message.Content
	c.logger.DebugContext(ctx, "groq completion received",
		"model", c.model,
		"response_length", len(text))
	return text, nil
}

// mapError translates SDK failures into generation sentinels.
func (c *Client) mapError(ctx context.Context, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		c.logger.ErrorContext(ctx, "groq returned non-2xx status",
			"status", apiErr.HTTPStatusCode,
			"body", redact.String(apiErr.Message))
		return fmt.Errorf("%w: status %d", generation.ErrUpstreamStatus, apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		c.logger.ErrorContext(ctx, "groq returned non-2xx status",
			"status", reqErr.HTTPStatusCode,
			"body", redact.String(string(reqErr.Body)))
		return fmt.Errorf("%w: status %d", generation.ErrUpstreamStatus, reqErr.HTTPStatusCode)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.logger.ErrorContext(ctx, "groq request failed", "error", redact.Error(err))
		return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		c.logger.ErrorContext(ctx, "failed to decode groq response", "error", err)
		return fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	c.logger.ErrorContext(ctx, "groq request failed", "error", redact.Error(err))
	return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
}
