// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"userdash/internal/config"
	"userdash/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires an active session.
	// Commands like help, version, login, register, logout, theme, and
	// ui return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// st is the opened store; the dispatcher has already verified the
	// session for commands whose NeedsAuth() returns true.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int
}
