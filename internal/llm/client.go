package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dubai-health/concierge/internal/shared/config"
	apperrors "github.com/dubai-health/concierge/internal/shared/errors"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

// Request is a single chat completion request.
type Request struct {
	System      string
	User        string
	JSONMode    bool
	Temperature float32
	MaxTokens   int
}

// Completer issues model completions. The operation name labels
// metrics and logs only.
type Completer interface {
	Complete(ctx context.Context, operation string, req Request) (string, error)
}

// Client is a Completer backed by the OpenAI chat completions API.
// Every call is paced by a shared rate limiter and bounded by a
// uniform timeout so a slow upstream degrades to the caller's
// fallback instead of stalling the pipeline.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient creates an OpenAI-backed Completer.
func NewClient(cfg config.OpenAIConfig, logger *zap.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		api:     openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}
}

func (c *Client) Complete(ctx context.Context, operation string, req Request) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	ccr := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.MaxTokens > 0 {
		ccr.MaxTokens = req.MaxTokens
	}
	if req.JSONMode {
		ccr.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, ccr)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordModelRequest(operation, "error", elapsed)
		c.logger.Warn("model call failed",
			zap.String("operation", operation),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return "", apperrors.Unavailable(err, "openai")
	}
	if len(resp.Choices) == 0 {
		metrics.RecordModelRequest(operation, "empty", elapsed)
		return "", apperrors.Wrap(fmt.Errorf("operation %s", operation), "no choices returned")
	}

	metrics.RecordModelRequest(operation, "success", elapsed)
	c.logger.Debug("model call completed",
		zap.String("operation", operation),
		zap.Duration("elapsed", elapsed),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))

	return resp.Choices[0].Message.Content, nil
}

// ExtractJSON pulls the first JSON object or array out of a model
// reply. Models occasionally wrap JSON in markdown fences or prose
// despite instructions; this salvages those replies.
func ExtractJSON(raw string) (string, bool) {
	s := strings.TrimSpace(raw)

	if fenced := stripFence(s); fenced != "" {
		s = fenced
	}

	// Whichever bracket opens first decides the payload shape: an
	// array of objects must keep its array brackets.
	objStart := strings.IndexByte(s, '{')
	arrStart := strings.IndexByte(s, '[')
	start, closer := objStart, byte('}')
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start, closer = arrStart, ']'
	}
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(s, closer)
	if end > start {
		return s[start : end+1], true
	}
	return "", false
}

func stripFence(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return ""
	}
	rest := s[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// Skip a language tag like ```json.
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
