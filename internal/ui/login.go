package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdash/internal/session"
	"userdash/internal/validation"
)

// loginForm holds the login screen's inputs and field errors.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errs     validation.Errors
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "Enter your email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 40

	return loginForm{
		email:    email,
		password: password,
		errs:     validation.Errors{},
	}
}

// loginFieldNames maps focus index to the validation field name, so a
// field's error clears as soon as the user edits it.
var loginFieldNames = []string{"email", "password"}

func (f loginForm) setFocus(focus int) loginForm {
	f.focus = focus
	f.email.Blur()
	f.password.Blur()
	switch focus {
	case 0:
		f.email.Focus()
	case 1:
		f.password.Focus()
	}
	return f
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.login = m.login.setFocus((m.login.focus + 1) % len(loginFieldNames))
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.login = m.login.setFocus((m.login.focus + len(loginFieldNames) - 1) % len(loginFieldNames))
			return m, nil
		case tea.KeyEnter:
			if m.login.focus < len(loginFieldNames)-1 {
				m.login = m.login.setFocus(m.login.focus + 1)
				return m, nil
			}
			return m.submitLogin()
		case tea.KeyCtrlN:
			m = m.navigate(screenRegister)
			return m, nil
		}
	}

	// Route input to the focused field and clear its error.
	var cmd tea.Cmd
	switch m.login.focus {
	case 0:
		m.login.email, cmd = m.login.email.Update(msg)
	case 1:
		m.login.password, cmd = m.login.password.Update(msg)
	}
	if isKey {
		delete(m.login.errs, loginFieldNames[m.login.focus])
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	email := m.login.email.Value()
	password := m.login.password.Value()

	errs := m.ctrl.ValidateLogin(email, password)
	if !errs.Valid() {
		m.login.errs = errs
		return m, nil
	}

	m.pendingUser = m.ctrl.NewUser(session.NameFromEmail(email), email)
	return m.beginLatency(pendingLogin)
}

func (m Model) viewLogin(theme Theme) string {
	title := theme.header().Render("Welcome Back")
	subtitle := theme.faint().Render("Sign in to access your dashboard")

	body := title + "\n" + subtitle + "\n\n"
	body += renderField(theme, "Email Address", m.login.email, m.login.errs, "email")
	body += renderField(theme, "Password", m.login.password, m.login.errs, "password")

	if m.busy {
		body += m.spin.View() + theme.faint().Render(" Signing in...") + "\n"
	} else {
		body += theme.help().Render("tab: next field • enter: sign in • ctrl+n: create account • ctrl+c: quit") + "\n"
	}
	return theme.box().Render(body)
}

// renderField renders a labeled input with its inline error, if any.
func renderField(theme Theme, label string, input textinput.Model, errs validation.Errors, field string) string {
	out := theme.normal().Render(label) + "\n" + input.View() + "\n"
	if err, ok := errs[field]; ok {
		out += theme.fieldError().Render(err.Message()) + "\n"
	}
	return out + "\n"
}
