package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/ai-summarizer/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New().With("component", "main")

	app, err := initializeApp()
	if err != nil {
		// missing OPENAI_API_KEY lands here
		log.Error("summarizer failed to start", "error", err)
		stop()
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("summarizer stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}
