//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/ai-summarizer/internal/bootstrap"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
	httpiface "github.com/yanqian/ai-summarizer/internal/interface/http"
	"github.com/yanqian/ai-summarizer/pkg/logger"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideRegistry,
		provideRecorder,
		bootstrap.SummarizerSet,
		wire.Bind(new(metrics.Recorder), new(*metrics.PrometheusRecorder)),
		httpiface.NewSummaryHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
