package tokenizer

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"golang.org/x/sync/singleflight"

	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
)

const (
	fallbackEncoding   = "cl100k_base"
	defaultLoadTimeout = 5 * time.Second
)

// Counter estimates prompt tokens with the model's BPE encoding. Encodings are
// loaded lazily, once per model, and cached. Callers never wait longer than
// loadTimeout (or their context) for a load; until one succeeds they get the
// characters-per-token estimate.
type Counter struct {
	load        func(model string) (*tiktoken.Tiktoken, error)
	loadTimeout time.Duration
	logger      *slog.Logger

	group     singleflight.Group
	mu        sync.RWMutex
	encodings map[string]*tiktoken.Tiktoken
	failed    map[string]bool
}

// NewCounter builds a Counter backed by tiktoken-go.
func NewCounter(logger *slog.Logger) *Counter {
	return &Counter{
		load:        loadEncoding,
		loadTimeout: defaultLoadTimeout,
		logger:      logger.With("component", "tokenizer"),
		encodings:   make(map[string]*tiktoken.Tiktoken),
		failed:      make(map[string]bool),
	}
}

// Count returns the number of tokens text costs for model.
func (c *Counter) Count(ctx context.Context, model, text string) int {
	if text == "" {
		return 0
	}
	if enc := c.encoding(ctx, model); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return Estimate(text)
}

func (c *Counter) encoding(ctx context.Context, model string) *tiktoken.Tiktoken {
	c.mu.RLock()
	enc, ok := c.encodings[model]
	failed := c.failed[model]
	c.mu.RUnlock()
	if ok {
		return enc
	}
	if failed {
		return nil
	}

	// The load runs outside the lock and keeps going after a caller gives up,
	// so later requests pick up the cached result.
	ch := c.group.DoChan(model, func() (any, error) {
		enc, err := c.load(model)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.logger.Warn("token encoding unavailable, using estimate", "model", model, "error", err)
			c.failed[model] = true
			return nil, err
		}
		c.encodings[model] = enc
		return enc, nil
	})

	timer := time.NewTimer(c.loadTimeout)
	defer timer.Stop()
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil
		}
		return res.Val.(*tiktoken.Tiktoken)
	case <-timer.C:
		c.logger.Warn("token encoding load still pending, using estimate", "model", model)
		return nil
	case <-ctx.Done():
		return nil
	}
}

func loadEncoding(model string) (*tiktoken.Tiktoken, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err == nil {
		return enc, nil
	}
	return tiktoken.GetEncoding(fallbackEncoding)
}

// Estimate approximates tokens as one per four characters, rounded up.
func Estimate(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + 3) / 4
}

var _ summarizer.TokenCounter = (*Counter)(nil)
