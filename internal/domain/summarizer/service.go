package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// DefaultSystemPrompt steers the provider toward format-conforming output.
const DefaultSystemPrompt = "You are a helpful assistant that creates clear, accurate summaries. Focus on the most important information and maintain the requested format."

// Service exposes summarization capabilities.
type Service interface {
	Summarize(ctx context.Context, req Request) (Response, error)
}

// Generator is the text generation provider.
type Generator interface {
	Generate(ctx context.Context, gen Generation) (Completion, error)
}

// TokenCounter estimates how many tokens a prompt costs for a model.
type TokenCounter interface {
	Count(ctx context.Context, model, text string) int
}

type service struct {
	cfg       Config
	generator Generator
	counter   TokenCounter
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, generator Generator, counter TokenCounter, recorder metrics.Recorder, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &service{
		cfg:       cfg,
		generator: generator,
		counter:   counter,
		recorder:  recorder,
		logger:    logger.With("component", "summarizer.service"),
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (resp Response, err error) {
	start := time.Now()
	// labels stay bounded until the enums are resolved
	shapeLabel, lengthLabel := "unknown", "unknown"
	defer func() {
		s.recorder.RecordRequest(shapeLabel, lengthLabel, outcomeOf(err), time.Since(start))
	}()

	if strings.TrimSpace(req.Text) == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "text cannot be empty", nil)
	}
	shape, err := resolveShape(req.SummaryType)
	if err != nil {
		return Response{}, err
	}
	length, err := resolveLength(req.Length)
	if err != nil {
		return Response{}, err
	}
	shapeLabel, lengthLabel = string(shape), string(length)

	instruction, err := BuildInstruction(shape, length)
	if err != nil {
		return Response{}, err
	}
	prompt := BuildPrompt(instruction, req.Text)

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = s.cfg.Model
	}

	// the deadline covers token counting as well as the provider call
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	if s.counter != nil && s.cfg.MaxInputTokens > 0 {
		promptTokens := s.counter.Count(ctx, model, prompt)
		s.logger.Debug("prompt built", "shape", shape, "length", length, "prompt_tokens", promptTokens, "max_tokens", instruction.MaxTokens)
		if promptTokens > s.cfg.MaxInputTokens {
			return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput,
				fmt.Sprintf("text is too long: %d tokens exceeds the limit of %d", promptTokens, s.cfg.MaxInputTokens), nil)
		}
	}

	completion, err := s.generator.Generate(ctx, Generation{
		Model:             model,
		SystemInstruction: s.cfg.SystemPrompt,
		Prompt:            prompt,
		MaxTokens:         instruction.MaxTokens,
		Temperature:       s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Error("provider call failed", "model", model, "error", err, "timeout", errors.Is(err, context.DeadlineExceeded))
		return Response{}, apperrors.Wrap(apperrors.CodeUpstreamFailure, "failed to generate summary", err)
	}
	s.recorder.RecordUsage(completion.Usage)

	summary := strings.TrimSpace(completion.Text)
	if summary == "" {
		s.logger.Error("provider returned empty summary", "model", model)
		return Response{}, apperrors.Wrap(apperrors.CodeUpstreamFailure, "failed to generate summary", errors.New("empty completion"))
	}

	s.logger.Info("summary generated",
		"shape", shape,
		"length", length,
		"summary_chars", len([]rune(summary)),
		"prompt_tokens", completion.Usage.PromptTokens,
		"completion_tokens", completion.Usage.CompletionTokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Response{Summary: summary}, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return metrics.OutcomeInvalidInput
	default:
		return metrics.OutcomeUpstream
	}
}
