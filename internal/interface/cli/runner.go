package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// maxStdinBytes bounds how much JSON pipe mode will read.
const maxStdinBytes = 8 << 20

var textExtensions = map[string]struct{}{
	".txt":  {},
	".text": {},
	".md":   {},
}

// Streams are the process standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's stdin, stdout and stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Runner adapts the summarizer service to the command line.
type Runner struct {
	svc     summarizer.Service
	streams Streams
	logger  *slog.Logger
}

// NewRunner constructs a Runner.
func NewRunner(svc summarizer.Service, streams Streams, logger *slog.Logger) *Runner {
	return &Runner{svc: svc, streams: streams, logger: logger.With("component", "cli.runner")}
}

// IsTextFile reports whether path has a recognized text file extension.
func IsTextFile(path string) bool {
	_, ok := textExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ReadSource loads the file to summarize.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("File %s not found", path), err)
		}
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("File %s could not be read", path), err)
	}
	return string(data), nil
}

// PrintError writes "Error: <message>" to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", apperrors.Message(err))
}

// SummarizeText summarizes text with the default shape and length and prints
// the result for a human reader. The service logs its own failures.
func (r *Runner) SummarizeText(ctx context.Context, text string) int {
	resp, err := r.svc.Summarize(ctx, summarizer.Request{Text: text})
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			PrintError(r.streams.Err, err)
		} else {
			fmt.Fprintln(r.streams.Err, "Error: Failed to generate summary")
		}
		return ExitFailure
	}
	fmt.Fprintf(r.streams.Out, "Summary:\n%s\n", resp.Summary)
	return ExitOK
}

type pipeOutput struct {
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SummarizeJSON reads a request object from stdin and writes a JSON result to
// stdout, or a JSON error to stderr.
func (r *Runner) SummarizeJSON(ctx context.Context) int {
	raw, err := io.ReadAll(io.LimitReader(r.streams.In, maxStdinBytes))
	if err != nil {
		return r.pipeFailure("Failed to read input", err)
	}
	var req summarizer.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return r.pipeFailure("Invalid JSON input", err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return r.pipeFailure("No text provided", nil)
	}

	resp, err := r.svc.Summarize(ctx, req)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			return r.pipeFailure(apperrors.Message(err), nil)
		}
		return r.pipeFailure("Failed to generate summary", nil)
	}
	if err := json.NewEncoder(r.streams.Out).Encode(pipeOutput{Summary: resp.Summary}); err != nil {
		r.logger.Error("write summary failed", "error", err)
		return ExitFailure
	}
	return ExitOK
}

// WriteJSONError reports a failure in pipe mode's wire format.
func WriteJSONError(w io.Writer, message string) {
	_ = json.NewEncoder(w).Encode(pipeOutput{Error: message})
}

func (r *Runner) pipeFailure(message string, err error) int {
	if err != nil {
		r.logger.Error("pipe request failed", "reason", message, "error", err)
	}
	WriteJSONError(r.streams.Err, message)
	return ExitFailure
}
