// Package cli parses the stego command line, merges in config-file
// defaults, and formats operation results for people.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// Subcommands.
const (
	CmdEmbed   = "embed"
	CmdExtract = "extract"
	CmdFormats = "formats"
)

// Options is the fully resolved CLI invocation: flags, config-file
// defaults and positional arguments already merged and validated.
type Options struct {
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string // force an engine by name or extension, empty = detect
	Config  string // config file path, empty = default lookup

	ShowVersion bool
	ShowHelp    bool

	Command string
	Args    []string
}

// ErrUsage wraps argument errors so the caller can print usage help and
// exit with a distinct status.
var ErrUsage = errors.New("usage error")

// Parse parses argv, loads the config file, and applies config defaults
// to every flag the user did not set explicitly.
func Parse(argv []string) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet("stego", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress all output except errors")
	fs.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&opts.Format, "format", "", "force a format engine instead of detecting (name or extension)")
	fs.StringVar(&opts.Config, "config", "", "config file path (default: ./stego.yaml when present)")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version and exit")
	fs.BoolVarP(&opts.ShowHelp, "help", "h", false, "show help")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.ShowHelp = true
			return opts, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if err := applyConfig(opts, fs); err != nil {
		return nil, err
	}

	if opts.ShowVersion || opts.ShowHelp {
		return opts, nil
	}

	args := fs.Args()
	if len(args) == 0 {
		opts.ShowHelp = true
		return opts, nil
	}
	opts.Command, opts.Args = args[0], args[1:]

	switch opts.Command {
	case CmdEmbed:
		if len(opts.Args) != 3 {
			return nil, fmt.Errorf("%w: embed expects <carrier> <payload> <output>, got %d arguments", ErrUsage, len(opts.Args))
		}
	case CmdExtract:
		if len(opts.Args) != 2 {
			return nil, fmt.Errorf("%w: extract expects <carrier> <output>, got %d arguments", ErrUsage, len(opts.Args))
		}
	case CmdFormats:
		if len(opts.Args) != 0 {
			return nil, fmt.Errorf("%w: formats takes no arguments", ErrUsage)
		}
	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrUsage, opts.Command)
	}
	return opts, nil
}

// applyConfig loads the config file and fills in every option whose flag
// the user did not pass explicitly. A --config path that cannot be read
// is an error; the implicit default path is allowed to be absent.
func applyConfig(opts *Options, fs *pflag.FlagSet) error {
	path := opts.Config
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	if !fs.Changed("verbose") {
		opts.Verbose = cfg.Verbose
	}
	if !fs.Changed("quiet") {
		opts.Quiet = cfg.Quiet
	}
	if !fs.Changed("no-color") {
		opts.NoColor = cfg.NoColor
	}
	if !fs.Changed("format") {
		opts.Format = cfg.Format
	}
	return nil
}
