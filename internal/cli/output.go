package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/oy3o/stego"
)

// Printer writes user-facing lines with optional color. Errors always
// print; everything else is silenced in quiet mode.
type Printer struct {
	out   *termenv.Output
	err   *termenv.Output
	quiet bool
}

// NewPrinter builds a Printer over the given streams. With noColor the
// ASCII profile is forced, otherwise termenv detects what the terminal
// supports.
func NewPrinter(stdout, stderr io.Writer, noColor, quiet bool) *Printer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Printer{
		out:   termenv.NewOutput(stdout, opts...),
		err:   termenv.NewOutput(stderr, opts...),
		quiet: quiet,
	}
}

// Successf prints a bold green line, unless quiet.
func (p *Printer) Successf(format string, args ...any) {
	if p.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.out, p.out.String(msg).Foreground(termenv.ANSIGreen).Bold())
}

// Errorf prints a bold red line to stderr. Quiet mode does not suppress
// errors.
func (p *Printer) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.err, p.err.String(msg).Foreground(termenv.ANSIRed).Bold())
}

// Printf prints a plain line, unless quiet.
func (p *Printer) Printf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// EmbedSummary prints the outcome of an embed: engine, sizes, growth.
func (p *Printer) EmbedSummary(res *stego.EmbedResult) {
	p.Successf("embedded %s payload into %s carrier (%s -> %s, +%.1f%%)",
		HumanSize(res.PayloadSize), res.Engine,
		HumanSize(res.SourceSize), HumanSize(res.OutputSize),
		Growth(res.SourceSize, res.OutputSize))
}

// ExtractSummary prints the outcome of an extract.
func (p *Printer) ExtractSummary(res *stego.ExtractResult) {
	p.Successf("extracted %s payload from %s carrier (%s)",
		HumanSize(res.PayloadSize), res.Engine, HumanSize(res.SourceSize))
}

// Formats prints the engine table for the formats command.
func (p *Printer) Formats(engines []stego.Engine) {
	for _, e := range engines {
		p.Printf("%-6s %-6s signature %d bytes", e.Name(), e.Ext(), len(e.Signature().Magic))
	}
}
