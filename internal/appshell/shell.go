// Package appshell owns the process-level concerns of the stego binary:
// signal handling, stream wiring and exit-code normalization. Keeping
// them here leaves main.go with nothing but command dispatch, which the
// CLI tests can drive directly.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a complete CLI invocation: argv without the program name,
// the output streams, and the exit code to report.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn with a context that is canceled on SIGINT or SIGTERM and
// exits the process with fn's code. Cancellation with a zero code is
// normalized to 130, the conventional interrupted-by-signal status.
func Main(fn RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := fn(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
