// Package session validates login, registration, and profile form input
// and fabricates the mock authenticated user. There is no backend: any
// well-formed credentials are accepted and the user record is synthesized
// client-side from the form fields.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"userdash/internal/store"
	"userdash/internal/validation"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// MinNameLength is the minimum accepted display-name length after
// trimming.
const MinNameLength = 2

// avatarURL is the placeholder avatar service. The seed only has to be
// stable per fabricated user, not meaningful.
const avatarURL = "https://i.pravatar.cc/150?u=%s"

// Controller gates the store's session mutations behind form validation.
// It validates only; on success the caller invokes the store mutation
// with the fabricated user.
type Controller struct {
	clock clockwork.Clock
}

// NewController creates a session controller using the given clock for
// user creation timestamps.
func NewController(clock clockwork.Clock) *Controller {
	return &Controller{clock: clock}
}

// ValidateLogin checks login form input. An empty result means valid.
func (c *Controller) ValidateLogin(email, password string) validation.Errors {
	errs := validation.Errors{}
	checkEmail(errs, email)
	checkPassword(errs, password)
	return errs
}

// ValidateRegistration checks registration form input. An empty result
// means valid.
func (c *Controller) ValidateRegistration(name, email, password, confirmPassword string) validation.Errors {
	errs := validation.Errors{}
	checkName(errs, name)
	checkEmail(errs, email)
	checkPassword(errs, password)
	switch {
	case confirmPassword == "":
		errs.Add("confirmPassword", validation.ReasonRequired)
	case confirmPassword != password:
		errs.Add("confirmPassword", validation.ReasonMismatch)
	}
	return errs
}

// ValidateProfile checks profile form input. Bio is unconstrained. An
// empty result means valid.
func (c *Controller) ValidateProfile(name, email string) validation.Errors {
	errs := validation.Errors{}
	checkName(errs, name)
	checkEmail(errs, email)
	return errs
}

// NewUser fabricates the authenticated user record from validated form
// input. The id is the clock's unix milliseconds: the store holds one
// user at a time, so the id only needs to look like an account id, not
// coordinate with anything.
func (c *Controller) NewUser(name, email string) store.User {
	return store.User{
		ID:        c.clock.Now().UnixMilli(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Avatar:    fmt.Sprintf(avatarURL, uuid.NewString()),
		CreatedAt: c.clock.Now(),
	}
}

// NameFromEmail derives a display name for a login, which has no name
// field of its own: the local part of the address.
func NameFromEmail(email string) string {
	email = strings.TrimSpace(email)
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func checkName(errs validation.Errors, name string) {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		errs.Add("name", validation.ReasonRequired)
	case len(trimmed) < MinNameLength:
		errs.Add("name", validation.ReasonTooShort)
	}
}

func checkEmail(errs validation.Errors, email string) {
	switch {
	case email == "":
		errs.Add("email", validation.ReasonRequired)
	case !validation.ValidEmail(email):
		errs.Add("email", validation.ReasonInvalidFormat)
	}
}

func checkPassword(errs validation.Errors, password string) {
	switch {
	case password == "":
		errs.Add("password", validation.ReasonRequired)
	case len(password) < MinPasswordLength:
		errs.Add("password", validation.ReasonTooShort)
	}
}
