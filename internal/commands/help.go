package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                               List pending tasks
  todo list [common flags] [--sort priority|date|alpha] [--all]
  todo add [common flags] [--priority High|Medium|Low] <title...>
  todo edit [common flags] <num> [--title <t>] [--priority <p>]
  todo done [common flags] <num>
  todo rm [common flags] <num>
  todo clear [common flags]
  todo stats [common flags]
  todo export [common flags] [--format json|csv|pdf] [--out <file>]
  todo import [common flags] [--replace] <file>
  todo report [common flags] <file.pdf>
  todo help
  todo version

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override task file path
  --quiet          Suppress informational output
`
