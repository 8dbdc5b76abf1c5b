package chatgpt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// Client generates summaries through the OpenAI chat completions API.
type Client struct {
	api *openai.Client
}

// NewClient constructs a ChatGPT client. An empty baseURL keeps the OpenAI default.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chatgpt api key cannot be empty")
	}
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	return &Client{api: openai.NewClientWithConfig(cfg)}, nil
}

// Generate sends the system instruction and prompt as a single chat turn.
func (c *Client) Generate(ctx context.Context, gen summarizer.Generation) (summarizer.Completion, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: gen.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: gen.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: gen.Prompt},
		},
		MaxTokens:   gen.MaxTokens,
		Temperature: gen.Temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return summarizer.Completion{}, fmt.Errorf("chatgpt request failed: status=%d: %w", apiErr.HTTPStatusCode, err)
		}
		return summarizer.Completion{}, fmt.Errorf("chatgpt request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return summarizer.Completion{}, errors.New("chatgpt returned no choices")
	}
	return summarizer.Completion{
		Text:  resp.Choices[0].Message.Content,
		Usage: metrics.NewTokenUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens),
	}, nil
}

var _ summarizer.Generator = (*Client)(nil)
