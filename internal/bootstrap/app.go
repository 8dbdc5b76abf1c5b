package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/ai-summarizer/internal/infra/config"
)

const defaultShutdownTimeout = 10 * time.Second

// App owns the summarizer HTTP server from listen to drain.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server}
}

// Run serves until ctx is cancelled, then drains in-flight summaries for at
// most http.shutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("summarizer listening",
			"address", a.cfg.HTTP.Address,
			"model", a.cfg.LLM.Model,
			"llm_timeout", a.cfg.LLM.Timeout,
		)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return a.drain()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) drain() error {
	timeout := a.cfg.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	a.logger.Info("draining in-flight requests", "timeout", timeout)
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("shutdown incomplete", "error", err, "elapsed", time.Since(start))
		return err
	}
	a.logger.Info("summarizer stopped", "elapsed", time.Since(start))
	return nil
}
