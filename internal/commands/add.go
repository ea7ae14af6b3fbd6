package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"userdash/internal/config"
	"userdash/internal/exitcode"
	"userdash/internal/store"
	"userdash/internal/taskctl"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.description = desc
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "userdash add [--desc <text>] <title...>" }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	// Join args to form title
	title := strings.Join(args, " ")
	if errs := taskctl.ValidateNewTask(title); !errs.Valid() {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	title, description := taskctl.PrepareNewTask(title, c.description)
	task, err := st.AddTask(title, description)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added %d\n", task.ID)
	}
	return exitcode.Success
}
