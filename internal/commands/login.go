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
	"userdash/internal/validation"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command. Authentication is a local mock:
// any well-formed credentials establish a session with a user record
// fabricated from the form input.
type LoginCmd struct {
	email    string
	password string
	clock    clockwork.Clock
}

// SetClock sets the clock used for user timestamps (for testing).
func (c *LoginCmd) SetClock(clock clockwork.Clock) {
	c.clock = clock
}

// SetCredentials sets the email and password flags (for testing).
func (c *LoginCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Sign in (mock, local only)" }
func (c *LoginCmd) Usage() string {
	return "userdash login --email <addr> --password <pw>"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.email, "e", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
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

	ctrl := session.NewController(c.clockOrReal())
	if errs := ctrl.ValidateLogin(c.email, c.password); !errs.Valid() {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	user := ctrl.NewUser(session.NameFromEmail(c.email), c.email)
	if err := st.Login(user); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", user.Email)
	}
	return exitcode.Success
}

func (c *LoginCmd) clockOrReal() clockwork.Clock {
	if c.clock != nil {
		return c.clock
	}
	return clockwork.NewRealClock()
}

// printFieldErrors prints one line per failed field in a stable order.
func printFieldErrors(errOut io.Writer, errs validation.Errors) {
	for _, field := range errs.Fields() {
		fmt.Fprintf(errOut, "error: %s\n", errs[field].Error())
	}
}
