package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jonboulle/clockwork"

	"userdash/internal/config"
	"userdash/internal/exitcode"
	"userdash/internal/output"
	"userdash/internal/session"
	"userdash/internal/store"
)

func init() {
	Register(&ProfileCmd{})
}

// ProfileCmd implements the profile command. Without flags it shows the
// current profile; with flags it applies a partial update, preserving
// every omitted field.
type ProfileCmd struct {
	name  optionalString
	email optionalString
	bio   optionalString
	clock clockwork.Clock
}

// SetClock sets the clock (for testing).
func (c *ProfileCmd) SetClock(clock clockwork.Clock) {
	c.clock = clock
}

// SetName sets the name flag (for testing).
func (c *ProfileCmd) SetName(name string) { c.name.Set(name) }

// SetEmail sets the email flag (for testing).
func (c *ProfileCmd) SetEmail(email string) { c.email.Set(email) }

// SetBio sets the bio flag (for testing).
func (c *ProfileCmd) SetBio(bio string) { c.bio.Set(bio) }

func (c *ProfileCmd) Name() string      { return "profile" }
func (c *ProfileCmd) Aliases() []string { return []string{"whoami"} }
func (c *ProfileCmd) Synopsis() string  { return "Show or update the profile" }
func (c *ProfileCmd) Usage() string {
	return "userdash profile [--name <name>] [--email <addr>] [--bio <text>]"
}
func (c *ProfileCmd) NeedsAuth() bool { return true }

func (c *ProfileCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&c.name, "name", "")
	fs.Var(&c.email, "email", "")
	fs.Var(&c.bio, "bio", "")
}

func (c *ProfileCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	user, ok := st.User()
	if !ok {
		// The dispatcher's auth guard keeps this unreachable; kept as a
		// backstop so a direct Run can't merge onto a nil user.
		fmt.Fprintf(errOut, "error: %v\n", store.ErrNoSession)
		return exitcode.AuthError
	}

	// Show mode.
	if !c.name.set && !c.email.set && !c.bio.set {
		output.FormatProfile(out, user)
		return exitcode.Success
	}

	clock := c.clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	// Validate the merged result: an update may change a single field,
	// but the resulting profile must still be valid as a whole.
	name, email := user.Name, user.Email
	if c.name.set {
		name = c.name.value
	}
	if c.email.set {
		email = c.email.value
	}
	ctrl := session.NewController(clock)
	if errs := ctrl.ValidateProfile(name, email); !errs.Valid() {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	update := store.ProfileUpdate{}
	if c.name.set {
		trimmed := strings.TrimSpace(c.name.value)
		update.Name = &trimmed
	}
	if c.email.set {
		trimmed := strings.TrimSpace(c.email.value)
		update.Email = &trimmed
	}
	if c.bio.set {
		trimmed := strings.TrimSpace(c.bio.value)
		update.Bio = &trimmed
	}
	if err := st.UpdateProfile(update); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
