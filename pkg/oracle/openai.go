package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultTimeout = 45 * time.Second

// OpenAI is an Oracle backed by the OpenAI chat-completion API.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewOpenAI creates an OpenAI oracle. A non-positive timeout falls back to
// the default, which is sized for typical LLM latency.
func NewOpenAI(apiKey, model string, timeout time.Duration, logger *slog.Logger) *OpenAI {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &OpenAI{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		logger:  logger.With("module", "oracle", "model", model),
	}
}

// Complete sends the prompt as a single user message with deterministic
// sampling and returns the completion text. Every failure is wrapped as
// ErrUnavailable so callers surface "could not generate, please retry".
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	started := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		o.logger.Warn("Completion request failed", "error", err, "elapsed", time.Since(started))

		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	o.logger.Debug("Completion request finished",
		"elapsed", time.Since(started),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}
