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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "userdash help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  userdash                                           Open the dashboard UI
  userdash ui [common flags]                         Open the dashboard UI
  userdash list [common flags] [--all | --pending | --completed]
  userdash add [common flags] [--desc <text>] <title...>
  userdash edit [common flags] [--title <text>] [--desc <text>] <id>
  userdash done [common flags] <id>
  userdash rm [common flags] <id>
  userdash login [common flags] --email <addr> --password <pw>
  userdash register [common flags] --name <name> --email <addr> --password <pw> --confirm <pw>
  userdash logout [common flags]
  userdash profile [common flags] [--name <name>] [--email <addr>] [--bio <text>]
  userdash theme [common flags]
  userdash help
  userdash version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
