package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"

	"userdash/internal/config"
	"userdash/internal/exitcode"
	"userdash/internal/session"
	"userdash/internal/store"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command. Like login, registration
// is a local mock: it validates the form and fabricates the account
// record client-side.
type RegisterCmd struct {
	name     string
	email    string
	password string
	confirm  string
	clock    clockwork.Clock
}

// SetClock sets the clock used for user timestamps (for testing).
func (c *RegisterCmd) SetClock(clock clockwork.Clock) {
	c.clock = clock
}

// SetForm sets the registration form flags (for testing).
func (c *RegisterCmd) SetForm(name, email, password, confirm string) {
	c.name = name
	c.email = email
	c.password = password
	c.confirm = confirm
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account (mock, local only)" }
func (c *RegisterCmd) Usage() string {
	return "userdash register --name <name> --email <addr> --password <pw> --confirm <pw>"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.confirm, "confirm", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if st.IsAuthenticated() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	clock := c.clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	ctrl := session.NewController(clock)
	if errs := ctrl.ValidateRegistration(c.name, c.email, c.password, c.confirm); !errs.Valid() {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	user := ctrl.NewUser(c.name, c.email)
	if err := st.Login(user); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "registered and logged in as %s\n", user.Email)
	}
	return exitcode.Success
}
