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
	Register(&ImportCmd{})
}

// ImportCmd implements the import command. The input must be a JSON
// export (the backing-file record format). Import is all-or-nothing:
// one bad record rejects the whole file.
type ImportCmd struct {
	replace bool
}

// SetReplace sets the replace flag value (for testing).
func (c *ImportCmd) SetReplace(replace bool) { c.replace = replace }

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return nil }
func (c *ImportCmd) Synopsis() string  { return "Import tasks from a JSON export" }
func (c *ImportCmd) Usage() string     { return "todo import [--replace] <file>" }
func (c *ImportCmd) NeedsStore() bool  { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.replace, "replace", false, "")
}

func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: import file required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	defer f.Close()

	tasks, err := export.ReadJSON(f)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.DataError
	}

	n, err := st.Import(tasks, c.replace)
	if err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "imported %d\n", n)
	}
	return exitcode.Success
}
