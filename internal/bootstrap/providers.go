package bootstrap

import (
	"github.com/google/wire"

	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
	"github.com/yanqian/ai-summarizer/internal/infra/llm/chatgpt"
	"github.com/yanqian/ai-summarizer/internal/infra/tokenizer"
)

// SummarizerSet provides summarizer.Service from *config.Config, a logger
// and a metrics.Recorder.
var SummarizerSet = wire.NewSet(
	ProvideSummaryConfig,
	ProvideChatGPTClient,
	tokenizer.NewCounter,
	summarizer.NewService,
	wire.Bind(new(summarizer.Generator), new(*chatgpt.Client)),
	wire.Bind(new(summarizer.TokenCounter), new(*tokenizer.Counter)),
)

// ProvideSummaryConfig maps runtime config onto the summarizer domain.
func ProvideSummaryConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		SystemPrompt:   cfg.Summary.SystemPrompt,
		Timeout:        cfg.LLM.Timeout,
		MaxInputTokens: cfg.Summary.MaxInputTokens,
	}
}

// ProvideChatGPTClient builds the OpenAI backed generator.
func ProvideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}
