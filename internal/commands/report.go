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
	Register(&ReportCmd{})
}

// ReportCmd implements the report command: a PDF with the stats summary
// and the full task list. Shorthand for export --format pdf --out.
type ReportCmd struct{}

func (c *ReportCmd) Name() string      { return "report" }
func (c *ReportCmd) Aliases() []string { return nil }
func (c *ReportCmd) Synopsis() string  { return "Write a PDF task report" }
func (c *ReportCmd) Usage() string     { return "todo report <file.pdf>" }
func (c *ReportCmd) NeedsStore() bool  { return true }

func (c *ReportCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReportCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: output file required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	f, err := os.Create(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	defer f.Close()

	if err := export.New(st).Export(f, export.FormatPDF); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
