// Command stego hides a payload file inside a PDF, PNG or JPEG carrier
// and recovers it again. The carrier stays valid for ordinary readers of
// its format; see the stego package documentation for what each format
// tolerates and what this deliberately does not protect against.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oy3o/stego"
	"github.com/oy3o/stego/internal/appshell"
	"github.com/oy3o/stego/internal/cli"
	"github.com/oy3o/stego/internal/fileio"
)

const version = "0.3.0"

func main() { appshell.Main(run) }

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(argv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			printUsage(stderr)
			return 2
		}
		return 1
	}

	switch {
	case opts.ShowVersion:
		fmt.Fprintf(stdout, "stego %s\n", version)
		return 0
	case opts.ShowHelp:
		printUsage(stdout)
		return 0
	}

	logger := newLogger(opts, stderr)
	defer func() { _ = logger.Sync() }()

	printer := cli.NewPrinter(stdout, stderr, opts.NoColor, opts.Quiet)
	router := stego.NewRouter()
	ops := stego.NewOperations(router)

	// An explicit --format bypasses signature detection.
	var engine stego.Engine
	if opts.Format != "" {
		engine, err = router.Lookup(opts.Format)
		if err != nil {
			printer.Errorf("error: %v", err)
			return 1
		}
		logger.Debug("engine forced", zap.String("engine", engine.Name()))
	}

	switch opts.Command {
	case cli.CmdEmbed:
		err = runEmbed(ctx, ops, engine, opts.Args, printer, logger, stdout)
	case cli.CmdExtract:
		err = runExtract(ctx, ops, engine, opts.Args, printer, logger, stdout)
	case cli.CmdFormats:
		printer.Formats(router.Engines())
	}
	if err != nil {
		printer.Errorf("error: %v", err)
		return 1
	}
	return 0
}

func runEmbed(ctx context.Context, ops *stego.Operations, engine stego.Engine, args []string, printer *cli.Printer, logger *zap.Logger, stdout io.Writer) error {
	carrierPath, payloadPath, outputPath := args[0], args[1], args[2]
	logger.Debug("embed",
		zap.String("carrier", carrierPath),
		zap.String("payload", payloadPath),
		zap.String("output", outputPath))

	source, err := fileio.Read(carrierPath)
	if err != nil {
		return err
	}
	payload, err := fileio.Read(payloadPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		out []byte
		res *stego.EmbedResult
	)
	if engine != nil {
		out, res, err = ops.EmbedWith(engine, source, payload)
	} else {
		out, res, err = ops.Embed(source, payload)
	}
	if err != nil {
		return err
	}

	if err := fileio.Write(outputPath, out, stdout); err != nil {
		return err
	}
	printer.EmbedSummary(res)
	return nil
}

func runExtract(ctx context.Context, ops *stego.Operations, engine stego.Engine, args []string, printer *cli.Printer, logger *zap.Logger, stdout io.Writer) error {
	carrierPath, outputPath := args[0], args[1]
	logger.Debug("extract",
		zap.String("carrier", carrierPath),
		zap.String("output", outputPath))

	source, err := fileio.Read(carrierPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		payload []byte
		res     *stego.ExtractResult
	)
	if engine != nil {
		payload, res, err = ops.ExtractWith(engine, source)
	} else {
		payload, res, err = ops.Extract(source)
	}
	if err != nil {
		return err
	}

	if err := fileio.Write(outputPath, payload, stdout); err != nil {
		return err
	}
	printer.ExtractSummary(res)
	return nil
}

// newLogger builds the CLI logger: silent in quiet mode, debug-level
// console output under --verbose, warnings and up otherwise. The core
// library never logs; this only narrates the I/O around it.
func newLogger(opts *cli.Options, stderr io.Writer) *zap.Logger {
	if opts.Quiet {
		return zap.NewNop()
	}
	level := zapcore.WarnLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		level,
	)
	return zap.New(core)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `stego %s - hide payloads inside container files

Usage:
  stego [flags] embed   <carrier> <payload> <output>
  stego [flags] extract <carrier> <output>
  stego [flags] formats

Use "-" as the output path to write to stdout.

Flags:
  -h, --help        show this help
  -q, --quiet       suppress all output except errors
  -v, --verbose     enable verbose logging
      --no-color    disable colored output
      --format      force a format engine (name or extension)
      --config      config file path (default: ./%s when present)
      --version     print version and exit
`, version, cli.DefaultConfigPath)
}
