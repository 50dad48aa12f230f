package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list [--sort <order>] [--all]`.
type ListCmd struct {
	sortOrder string
	all       bool
}

// SetSortOrder sets the sort order (for testing).
func (c *ListCmd) SetSortOrder(order string) {
	c.sortOrder = order
}

// SetAll sets the all flag (for testing).
func (c *ListCmd) SetAll(all bool) {
	c.all = all
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list [--sort priority|date|alpha] [--all]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.sortOrder, "sort", store.SortNone, "")
	fs.StringVar(&c.sortOrder, "s", store.SortNone, "")
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.all, "a", false, "")
}

// numbered pairs a task with its stable 1-based number: the task's
// position in insertion order, independent of sorting and filtering.
type numbered struct {
	num  int
	task store.Task
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if c.sortOrder == "" {
		c.sortOrder = store.SortNone
	}
	if !store.ValidSortOrder(c.sortOrder) {
		fmt.Fprintf(errOut, "error: invalid sort order: %s\n", c.sortOrder)
		return exitcode.UserError
	}
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	all := number(st.List())

	pending := filter(all, false)
	completed := filter(all, true)

	c.sortRows(pending)
	c.sortRows(completed)

	if len(pending) == 0 && (!c.all || len(completed) == 0) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for _, row := range pending {
		output.FormatTask(out, row.num, row.task)
	}

	if c.all && len(completed) > 0 {
		output.FormatSectionHeader(out, "Completed")
		for _, row := range completed {
			output.FormatTask(out, row.num, row.task)
		}
	}

	return exitcode.Success
}

func (c *ListCmd) sortRows(rows []numbered) {
	if c.sortOrder == store.SortNone {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return store.Less(rows[i].task, rows[j].task, c.sortOrder)
	})
}

// number assigns insertion-order positions.
func number(tasks []store.Task) []numbered {
	rows := make([]numbered, len(tasks))
	for i, t := range tasks {
		rows[i] = numbered{num: i + 1, task: t}
	}
	return rows
}

// filter keeps the rows with the given completion state.
func filter(rows []numbered, completed bool) []numbered {
	out := make([]numbered, 0, len(rows))
	for _, row := range rows {
		if row.task.Completed == completed {
			out = append(out, row)
		}
	}
	return out
}
