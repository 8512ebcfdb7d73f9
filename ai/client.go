package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client defaults.
const (
	// DefaultBaseURL is the Hugging Face Inference router endpoint.
	DefaultBaseURL = "https://router.huggingface.co/v1"

	// DefaultMaxRetries is the retry budget for transient API failures.
	DefaultMaxRetries = 3

	// DefaultTimeout bounds a single generation request.
	DefaultTimeout = 2 * time.Minute
)

// Generation errors.
var (
	// ErrNoAPIKey indicates no Hugging Face token was configured.
	ErrNoAPIKey = errors.New("Hugging Face API key not set (set HF_TOKEN or HUGGINGFACE_API_KEY)")

	// ErrEmptyResponse indicates the model returned no usable text.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// Client generates text through the inference API.
type Client struct {
	api         openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// ClientConfig configures the generation client.
type ClientConfig struct {
	APIKey       string        // API token (default: HF_TOKEN or HUGGINGFACE_API_KEY env)
	BaseURL      string        // API endpoint (default: DefaultBaseURL)
	Model        string        // Default model for Generate
	Temperature  float64       // Default sampling temperature
	MaxTokens    int           // Default generation token limit
	MaxRetries   int           // Retry budget (default: DefaultMaxRetries)
	RetryWaitMin time.Duration // Minimum backoff between retries (default: 1s)
	RetryWaitMax time.Duration // Maximum backoff between retries (default: 15s)
	Timeout      time.Duration // Per-request timeout (default: DefaultTimeout)
	HTTPClient   *http.Client  // Overrides the retrying transport (testing)
}

// NewClient creates a generation client.
// Returns ErrNoAPIKey when no token is configured or in the environment.
func NewClient(cfg ClientConfig) (*Client, error) {
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv("HF_TOKEN")
	}
	if key == "" {
		key = os.Getenv("HUGGINGFACE_API_KEY")
	}
	if key == "" {
		return nil, ErrNoAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newRetryingClient(cfg)
	}

	api := openai.NewClient(
		option.WithAPIKey(key),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(httpClient),
		// Retries live in the HTTP transport, not the SDK.
		option.WithMaxRetries(0),
	)

	return &Client{
		api:         api,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// newRetryingClient builds the backoff-retrying HTTP transport.
func newRetryingClient(cfg ClientConfig) *http.Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil

	rc.RetryMax = cfg.MaxRetries
	if rc.RetryMax <= 0 {
		rc.RetryMax = DefaultMaxRetries
	}
	rc.RetryWaitMin = cfg.RetryWaitMin
	if rc.RetryWaitMin <= 0 {
		rc.RetryWaitMin = 1 * time.Second
	}
	rc.RetryWaitMax = cfg.RetryWaitMax
	if rc.RetryWaitMax <= 0 {
		rc.RetryWaitMax = 15 * time.Second
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rc.HTTPClient.Timeout = timeout

	return rc.StandardClient()
}

// generateConfig holds settings for a single Generate call.
type generateConfig struct {
	model       string
	temperature float64
	maxTokens   int
}

// GenerateOption overrides a client default for one Generate call.
type GenerateOption func(*generateConfig)

// WithModel overrides the model.
func WithModel(model string) GenerateOption {
	return func(gc *generateConfig) {
		gc.model = model
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(temperature float64) GenerateOption {
	return func(gc *generateConfig) {
		gc.temperature = temperature
	}
}

// WithMaxTokens overrides the generation token limit.
func WithMaxTokens(maxTokens int) GenerateOption {
	return func(gc *generateConfig) {
		gc.maxTokens = maxTokens
	}
}

// Generate sends the prompt to the model and returns the generated
// text, trimmed. The transport retries transient failures; once the
// budget is exhausted the last error is returned.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	gc := generateConfig{
		model:       c.model,
		temperature: c.temperature,
		maxTokens:   c.maxTokens,
	}
	for _, opt := range opts {
		opt(&gc)
	}

	slog.Debug("generating", "model", gc.model, "max_tokens", gc.maxTokens, "temperature", gc.temperature)

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(gc.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(gc.temperature),
		MaxTokens:   openai.Int(int64(gc.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
