package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"userdash/internal/config"
	"userdash/internal/exitcode"
	"userdash/internal/store"
	"userdash/internal/taskctl"
)

func init() {
	Register(&EditCmd{})
}

// optionalString is a flag.Value that remembers whether it was set, so
// commands can distinguish an omitted flag from an empty one.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// EditCmd implements the edit command. Only the flags the user passed
// are merged into the task; omitted fields are preserved.
type EditCmd struct {
	title optionalString
	desc  optionalString
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's title or description" }
func (c *EditCmd) Usage() string     { return "userdash edit [--title <text>] [--desc <text>] <id>" }
func (c *EditCmd) NeedsAuth() bool   { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&c.title, "title", "")
	fs.Var(&c.desc, "desc", "")
}

// SetTitle sets the title flag (for testing).
func (c *EditCmd) SetTitle(title string) {
	c.title.Set(title)
}

// SetDescription sets the description flag (for testing).
func (c *EditCmd) SetDescription(desc string) {
	c.desc.Set(desc)
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		if err == ErrTaskIDRequired {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if !c.title.set && !c.desc.set {
		fmt.Fprintln(errOut, "error: nothing to update (pass --title or --desc)")
		return exitcode.UserError
	}

	task, ok := st.Task(id)
	if !ok {
		fmt.Fprintf(errOut, "error: no such task: %d\n", id)
		return exitcode.UserError
	}

	// Validate against the merged result so an edit can never leave a
	// task with an empty title.
	title, desc := task.Title, task.Description
	if c.title.set {
		title = c.title.value
	}
	if c.desc.set {
		desc = c.desc.value
	}
	title, desc, errs := taskctl.PrepareUpdate(title, desc)
	if !errs.Valid() {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	update := store.TaskUpdate{}
	if c.title.set {
		update.Title = &title
	}
	if c.desc.set {
		update.Description = &desc
	}
	if err := st.UpdateTask(id, update); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
