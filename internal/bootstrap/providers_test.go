package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
)

func TestProvideSummaryConfig(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			APIKey:      "sk-test",
			Model:       "gpt-3.5-turbo",
			Temperature: 0.5,
			Timeout:     45 * time.Second,
		},
		Summary: config.SummaryConfig{
			SystemPrompt:   "be brief",
			MaxInputTokens: 100,
		},
	}

	require.Equal(t, summarizer.Config{
		Model:          "gpt-3.5-turbo",
		Temperature:    0.5,
		SystemPrompt:   "be brief",
		Timeout:        45 * time.Second,
		MaxInputTokens: 100,
	}, ProvideSummaryConfig(cfg))
}

func TestProvideChatGPTClientRequiresKey(t *testing.T) {
	_, err := ProvideChatGPTClient(&config.Config{})
	require.Error(t, err)

	client, err := ProvideChatGPTClient(&config.Config{LLM: config.LLMConfig{APIKey: "sk-test"}})
	require.NoError(t, err)
	require.NotNil(t, client)
}
