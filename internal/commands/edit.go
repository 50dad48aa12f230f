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
	Register(&EditCmd{})
}

// EditCmd implements the edit command: a partial update of title and/or
// priority. Id and creation time are never touched.
type EditCmd struct {
	title    string
	priority string
}

// SetTitle sets the title flag value (for testing).
func (c *EditCmd) SetTitle(t string) { c.title = t }

// SetPriority sets the priority flag value (for testing).
func (c *EditCmd) SetPriority(p string) { c.priority = p }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's title or priority" }
func (c *EditCmd) Usage() string     { return "todo edit <num> [--title <t>] [--priority <p>]" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.title, "t", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.title == "" && c.priority == "" {
		fmt.Fprintln(errOut, "error: nothing to change (use --title or --priority)")
		return exitcode.UserError
	}

	var fields store.Fields
	if c.title != "" {
		fields.Title = &c.title
	}
	if c.priority != "" {
		p, err := store.ParsePriority(c.priority)
		if err != nil {
			return fail(errOut, err)
		}
		fields.Priority = &p
	}

	task, err := ResolveTaskRef(st, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if _, err := st.Update(task.ID, fields); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
