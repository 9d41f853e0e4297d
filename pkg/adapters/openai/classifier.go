// Package openai implements the classifier collaborator against an
// OpenAI-compatible chat-completions endpoint.
//
// The contract is deliberately thin: one request per day, no retry, no
// timeout beyond the caller's context. Any transport or parse problem is
// reported as a single classification failure.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/aretw0/daybook/pkg/core"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You label journal bullets with life-area category codes.
You are given a numbered list of bullets and a list of categories, each with a code, title and description.
Reply with ONLY a JSON array of category codes, one per bullet, in bullet order.
Example: ["w","f","p"]`

// Classifier calls a chat-completions API and parses the reply into one
// label per bullet.
type Classifier struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*config)

type config struct {
	model   string
	baseURL string
	logger  *slog.Logger
}

// WithModel sets the model to use. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(c *config) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint
// (Azure, local models, proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a classifier. An empty apiKey falls back to the
// OPENAI_API_KEY environment variable; if that is empty too, New fails.
func New(apiKey string, opts ...Option) (*Classifier, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("classifier API key is required")
	}

	cfg := &config{model: DefaultModel}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &Classifier{
		client: openai.NewClient(reqOpts...),
		model:  cfg.model,
		logger: cfg.logger,
	}, nil
}

// Classify implements core.Classifier.
func (c *Classifier) Classify(ctx context.Context, req core.ClassifyRequest) ([]string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(req)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}

	labels, err := parseLabels(completion.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("unparseable classifier reply", "error", err)
		return nil, err
	}
	return labels, nil
}

// ComponentType implements introspection.Component.
func (c *Classifier) ComponentType() string {
	return "openai_classifier"
}

func buildPrompt(req core.ClassifyRequest) string {
	var b strings.Builder

	b.WriteString("Categories:\n")
	for _, st := range req.States {
		b.WriteString("- ")
		b.WriteString(st.Code)
		b.WriteString(": ")
		b.WriteString(st.Title)
		if st.Description != "" {
			b.WriteString(" (")
			b.WriteString(st.Description)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}

	b.WriteString("\nBullets:\n")
	for i, bullet := range req.Bullets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, bullet)
	}

	return b.String()
}

// parseLabels extracts a JSON string array from the model reply, which
// may be wrapped in prose or a code fence.
func parseLabels(content string) ([]string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in reply")
	}

	var labels []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &labels); err != nil {
		return nil, fmt.Errorf("invalid label array: %w", err)
	}

	for i := range labels {
		labels[i] = strings.ToLower(strings.TrimSpace(labels[i]))
	}
	return labels, nil
}

var _ core.Classifier = (*Classifier)(nil)
