package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls an OpenAI-compatible Chat Completions API (Groq by default).
type OpenAIClient struct {
	model   openai.ChatModel
	timeout time.Duration
	client  *openai.Client
}

const (
	DefaultModel       = "llama3-8b-8192"
	defaultChatTimeout = 60 * time.Second
)

var ErrNoChoices = errors.New("chat completion returned no choices")

// NewOpenAIClient builds a client for the API rooted at baseURL. SDK retries
// are disabled: every request gets exactly one attempt.
func NewOpenAIClient(apiKey, baseURL string, model openai.ChatModel, timeout time.Duration) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAIClient{
		model:   model,
		timeout: timeout,
		client:  &cli,
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: buildMessages(system, user),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
		openai.UserMessage(user),
	}
}
