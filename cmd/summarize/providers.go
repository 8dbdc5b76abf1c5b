package main

import (
	"log/slog"

	"github.com/yanqian/ai-summarizer/internal/interface/cli"
	"github.com/yanqian/ai-summarizer/pkg/logger"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// provideLogger keeps stdout for summaries; diagnostics go to stderr.
func provideLogger(streams cli.Streams) *slog.Logger {
	return logger.NewWithWriter(streams.Err, slog.LevelError)
}

func provideRecorder() metrics.Recorder {
	return metrics.NopRecorder{}
}
