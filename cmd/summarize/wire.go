//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/ai-summarizer/internal/bootstrap"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
	"github.com/yanqian/ai-summarizer/internal/interface/cli"
)

func initializeRunner(streams cli.Streams) (*cli.Runner, error) {
	wire.Build(
		config.Load,
		provideLogger,
		provideRecorder,
		bootstrap.SummarizerSet,
		cli.NewRunner,
	)
	return nil, nil
}
