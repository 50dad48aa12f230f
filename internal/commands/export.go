package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/export"
	"todo/internal/store"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command. JSON output is the backing
// file record format, so an export can be imported back unchanged.
type ExportCmd struct {
	format string
	out    string
}

// SetFormat sets the format flag value (for testing).
func (c *ExportCmd) SetFormat(f string) { c.format = f }

// SetOut sets the output path flag value (for testing).
func (c *ExportCmd) SetOut(path string) { c.out = path }

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export tasks as JSON, CSV or PDF" }
func (c *ExportCmd) Usage() string     { return "todo export [--format json|csv|pdf] [--out <file>]" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", export.FormatJSON, "")
	fs.StringVar(&c.format, "f", export.FormatJSON, "")
	fs.StringVar(&c.out, "out", "", "")
	fs.StringVar(&c.out, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if c.format == "" {
		c.format = export.FormatJSON
	}
	switch c.format {
	case export.FormatJSON, export.FormatCSV, export.FormatPDF:
	default:
		fmt.Fprintf(errOut, "error: unknown format %s\n", c.format)
		return exitcode.UserError
	}

	// PDF is binary; refuse to dump it on a terminal stream.
	if c.format == export.FormatPDF && c.out == "" {
		fmt.Fprintln(errOut, "error: pdf export requires --out <file>")
		return exitcode.UserError
	}

	w := out
	if c.out != "" {
		f, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.IOError
		}
		defer f.Close()
		w = f
	}

	if err := export.New(st).Export(w, c.format); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if c.out != "" && !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
