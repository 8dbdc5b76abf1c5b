package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yanqian/ai-summarizer/internal/interface/cli"
)

// exitCode carries a non-zero process status out of cobra.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	streams := cli.StdStreams()
	if err := newRootCmd(streams).ExecuteContext(ctx); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			stop()
			os.Exit(int(code))
		}
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		stop()
		os.Exit(cli.ExitFailure)
	}
}

func newRootCmd(streams cli.Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [file.txt]",
		Short: "Summarize a text file, or a JSON request read from stdin",
		Long: `Summarize prints a bullet point summary of a .txt, .text or .md file.

Without a file argument it reads {"text", "summaryType", "length"} as JSON
from stdin and writes {"summary"} to stdout, or {"error"} to stderr.

OPENAI_API_KEY must be set in the environment or in a local .env file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var code int
			if len(args) == 1 {
				code = runFile(cmd.Context(), streams, args[0])
			} else {
				code = runPipe(cmd.Context(), streams)
			}
			if code != cli.ExitOK {
				return exitCode(code)
			}
			return nil
		},
	}
}

func runFile(ctx context.Context, streams cli.Streams, path string) int {
	if !cli.IsTextFile(path) {
		fmt.Fprintf(streams.Err, "Error: %s is not a text file (expected .txt, .text or .md)\n", path)
		return cli.ExitFailure
	}
	text, err := cli.ReadSource(path)
	if err != nil {
		cli.PrintError(streams.Err, err)
		return cli.ExitFailure
	}
	runner, err := initializeRunner(streams)
	if err != nil {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		return cli.ExitFailure
	}
	return runner.SummarizeText(ctx, text)
}

func runPipe(ctx context.Context, streams cli.Streams) int {
	runner, err := initializeRunner(streams)
	if err != nil {
		cli.WriteJSONError(streams.Err, err.Error())
		return cli.ExitFailure
	}
	return runner.SummarizeJSON(ctx)
}
