package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"userdash/internal/config"
	"userdash/internal/exitcode"
	"userdash/internal/store"
	"userdash/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd launches the interactive dashboard. It does not require a
// session itself: the UI starts on the login screen when anonymous and
// on the dashboard when a session was persisted.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return []string{"dashboard"} }
func (c *UICmd) Synopsis() string  { return "Open the dashboard UI" }
func (c *UICmd) Usage() string     { return "userdash ui [common flags]" }
func (c *UICmd) NeedsAuth() bool   { return false }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	model := ui.NewModel(st, clockwork.NewRealClock())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
