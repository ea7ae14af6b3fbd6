package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"userdash/internal/config"
	"userdash/internal/exitcode"
	"userdash/internal/output"
	"userdash/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command: the dashboard's task view as
// plain text, split into Pending and Completed sections.
type ListCmd struct {
	all       bool
	pending   bool
	completed bool
}

// SetFilter sets the pending/completed filters (for testing).
func (c *ListCmd) SetFilter(pending, completed bool) {
	c.pending = pending
	c.completed = completed
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "userdash list [--all | --pending | --completed]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.pending, "pending", false, "")
	fs.BoolVar(&c.completed, "completed", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	filters := 0
	for _, f := range []bool{c.all, c.pending, c.completed} {
		if f {
			filters++
		}
	}
	if filters > 1 {
		fmt.Fprintln(errOut, "error: --all, --pending, and --completed are mutually exclusive")
		return exitcode.UserError
	}

	var pending, completed []store.Task
	for _, task := range st.Tasks() {
		if task.Completed {
			completed = append(completed, task)
		} else {
			pending = append(pending, task)
		}
	}

	showPending := !c.completed
	showCompleted := !c.pending

	printed := false
	if showPending && len(pending) > 0 {
		output.FormatSectionHeader(out, "Pending Tasks")
		for _, task := range pending {
			output.FormatTask(out, task)
		}
		printed = true
	}
	if showCompleted && len(completed) > 0 {
		output.FormatSectionHeader(out, "Completed Tasks")
		for _, task := range completed {
			output.FormatTask(out, task)
		}
		printed = true
	}

	if !printed && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
