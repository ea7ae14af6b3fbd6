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
	Register(&ThemeCmd{})
}

// ThemeCmd implements the theme command. The preference persists across
// sessions: logging out does not reset it.
type ThemeCmd struct{}

func (c *ThemeCmd) Name() string      { return "theme" }
func (c *ThemeCmd) Aliases() []string { return nil }
func (c *ThemeCmd) Synopsis() string  { return "Toggle dark mode" }
func (c *ThemeCmd) Usage() string     { return "userdash theme" }
func (c *ThemeCmd) NeedsAuth() bool   { return false }

func (c *ThemeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ThemeCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	dark, err := st.ToggleDarkMode()
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		if dark {
			fmt.Fprintln(out, "dark mode on")
		} else {
			fmt.Fprintln(out, "dark mode off")
		}
	}
	return exitcode.Success
}
