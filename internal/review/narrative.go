package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// NarrativeConfig selects and bounds the text-completion backend.
type NarrativeConfig struct {
	Provider    string // "openai" (default) or "ollama"
	Model       string
	APIKey      string
	BaseURL     string // optional OpenAI-compatible endpoint
	OllamaURL   string
	CallTimeout time.Duration
}

// NarrativeClient produces the prose sections of the report from a prompt.
// It performs a single request/response exchange per run: no retries, no
// streaming.
type NarrativeClient struct {
	llm llms.Model
	log logr.Logger
	to  time.Duration
}

func NewNarrativeClient(cfg NarrativeConfig, base logr.Logger) (*NarrativeClient, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("narrative model name is required")
	}

	var (
		model llms.Model
		err   error
	)
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		opts := []openai.Option{
			openai.WithModel(cfg.Model),
			openai.WithToken(cfg.APIKey),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		model, err = openai.New(opts...)
	case "ollama":
		opts := []ollama.Option{
			ollama.WithModel(cfg.Model),
			ollama.WithKeepAlive("5m"),
		}
		if cfg.OllamaURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.OllamaURL))
		}
		model, err = ollama.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported narrative provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", cfg.Provider, err)
	}

	return &NarrativeClient{llm: model, log: base, to: cfg.CallTimeout}, nil
}

// Generate sends the prompt and returns the model's single text completion,
// treated as opaque prose.
func (c *NarrativeClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextContent{Text: systemPrompt}},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", c.annotateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", Fail(FailureCategoryMalformed, fmt.Errorf("empty narrative response"))
	}
	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return "", Fail(FailureCategoryMalformed, fmt.Errorf("blank narrative response"))
	}
	return text, nil
}

func (c *NarrativeClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}

func (c *NarrativeClient) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return Fail(FailureCategoryTimeout, fmt.Errorf("narrative call timed out after %s: %w", c.to, err))
	}
	return err
}
