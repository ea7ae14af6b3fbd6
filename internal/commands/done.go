package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"userdash/internal/config"
	"userdash/internal/exitcode"
	"userdash/internal/store"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It toggles the completed flag,
// so running it on a completed task reopens the task.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completed flag" }
func (c *DoneCmd) Usage() string     { return "userdash done <id>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		if err == ErrTaskIDRequired {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	// The store treats a missing id as a no-op; the CLI still tells the
	// user nothing matched.
	if _, ok := st.Task(id); !ok {
		fmt.Fprintf(errOut, "error: no such task: %d\n", id)
		return exitcode.UserError
	}

	if err := st.ToggleTaskComplete(id); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
